package spec

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"

	"github.com/erraggy/swaggertools/internal/httputil"
	"github.com/erraggy/swaggertools/internal/issues"
	"github.com/erraggy/swaggertools/internal/maputil"
	"github.com/erraggy/swaggertools/internal/pathutil"
	"github.com/erraggy/swaggertools/loader"
	"github.com/erraggy/swaggertools/oaserrors"
)

type v20 struct{}

// V20 returns the Swagger 2.0 capability.
func V20() Capability { return v20{} }

func (v20) Version() string { return Version20 }

func (v20) DocsURL() string {
	return "https://github.com/OAI/OpenAPI-Specification/blob/main/versions/2.0.md"
}

func (v20) SchemasURL() string {
	return "https://github.com/OAI/OpenAPI-Specification/tree/main/_archive_/schemas/v2.0"
}

func (v20) Validate(ctx context.Context, set loader.DocumentSet) (*Results, error) {
	cur, ok := set.(*loader.CurrentGeneration)
	if !ok || cur == nil {
		return nil, &oaserrors.ConfigError{
			Option:  "documents",
			Message: fmt.Sprintf("Swagger 2.0 validation needs a swagger object, got %T", set),
		}
	}
	return validate20(ctx, cur)
}

func (v20) Convert(context.Context, *loader.LegacyGeneration, ConvertOptions) (*Swagger20, error) {
	return nil, &oaserrors.ConversionError{
		SourceVersion: Version20,
		TargetVersion: Version20,
		Message:       "only Swagger 1.2 documents can be converted",
	}
}

// validate20 checks a Swagger 2.0 document against its schema, then runs the
// semantic checks if it is structurally valid.
func validate20(ctx context.Context, cur *loader.CurrentGeneration) (*Results, error) {
	c := &collector{source: cur.Source}
	found, err := validateSchema(schemaSwagger20, cur.Document)
	if err != nil {
		return nil, err
	}
	c.addAll(found)

	if len(found) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := check20(cur.Document, c); err != nil {
			return nil, err
		}
	}

	results := &Results{Version: Version20, Source: cur.Source}
	results.Errors, results.Warnings = c.sorted()
	return results, nil
}

// checker20 runs the semantic checks of a structurally valid 2.0 document.
type checker20 struct {
	api *openapi2.T
	doc loader.Document
	out *collector
}

func check20(doc loader.Document, out *collector) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("spec: encoding document: %w", err)
	}
	var api openapi2.T
	if err := json.Unmarshal(raw, &api); err != nil {
		out.errorf(nil, "INVALID_DOCUMENT", "Document could not be decoded: %v", err)
		return nil
	}

	c := &checker20{api: &api, doc: doc, out: out}
	c.checkMediaTypes(ptr("consumes"), api.Consumes)
	c.checkMediaTypes(ptr("produces"), api.Produces)
	c.checkPaths()
	c.checkRefs()
	c.checkSecurity()
	return nil
}

// param is a parameter after resolving local references.
type param struct {
	in       string
	name     string
	required bool
	at       []string
}

func (c *checker20) resolveParam(p *openapi2.Parameter, at []string) (param, bool) {
	if p == nil {
		return param{}, false
	}
	if p.Ref != "" {
		section, name, ok := pathutil.LocalRefTarget(p.Ref)
		if !ok || section != "parameters" || c.api.Parameters[name] == nil {
			// reported by checkRefs
			return param{}, false
		}
		p = c.api.Parameters[name]
	}
	return param{in: p.In, name: p.Name, required: p.Required, at: at}, true
}

func (c *checker20) checkPaths() {
	operationIDs := make(map[string]string)
	for _, p := range maputil.SortedKeys(c.api.Paths) {
		item := c.api.Paths[p]
		if item == nil {
			continue
		}
		at := ptr("paths", p)
		if err := pathutil.ValidateTemplate(p); err != nil {
			c.out.errorf(at, "INVALID_PATH", "Invalid path template %s: %v", p, err)
		}
		template := pathutil.TemplateParams(p)

		shared := make(map[string]param)
		for i, raw := range item.Parameters {
			prm, ok := c.resolveParam(raw, sub(at, "parameters", strconv.Itoa(i)))
			if !ok {
				continue
			}
			c.checkPathParam(prm, template)
			shared[prm.in+":"+prm.name] = prm
		}

		ops := item.Operations()
		for _, method := range httputil.Methods {
			op := ops[strings.ToUpper(method)]
			if op == nil {
				continue
			}
			opAt := sub(at, method)

			if id := op.OperationID; id != "" {
				if first, dup := operationIDs[id]; dup {
					c.out.errorf(sub(opAt, "operationId"), "DUPLICATE_OPERATIONID",
						"Cannot have multiple operations with the same operationId: %s (first defined at %s)", id, first)
				} else {
					operationIDs[id] = issues.FormatPointer(opAt...)
				}
			}

			c.checkOperationParams(opAt, shared, op.Parameters, template)

			for _, code := range maputil.SortedKeys(op.Responses) {
				if !httputil.ValidateStatusCode(code) {
					c.out.errorf(sub(opAt, "responses", code), "INVALID_RESPONSE_CODE", "Invalid response code: %s", code)
				}
			}
			c.checkMediaTypes(sub(opAt, "consumes"), op.Consumes)
			c.checkMediaTypes(sub(opAt, "produces"), op.Produces)
		}
	}
}

func (c *checker20) checkOperationParams(opAt []string, shared map[string]param, params openapi2.Parameters, template []string) {
	effective := make(map[string]param, len(shared)+len(params))
	for k, v := range shared {
		effective[k] = v
	}

	seen := make(map[string]bool)
	for i, raw := range params {
		prm, ok := c.resolveParam(raw, sub(opAt, "parameters", strconv.Itoa(i)))
		if !ok {
			continue
		}
		key := prm.in + ":" + prm.name
		if seen[key] {
			c.out.errorf(sub(prm.at, "name"), "DUPLICATE_PARAMETER", "Operation cannot have duplicate parameters: %s", prm.name)
		}
		seen[key] = true
		c.checkPathParam(prm, template)
		effective[key] = prm
	}

	declared := make(map[string]bool)
	bodies, forms := 0, 0
	for _, key := range maputil.SortedKeys(effective) {
		prm := effective[key]
		switch prm.in {
		case "body":
			bodies++
			if bodies > 1 {
				c.out.errorf(prm.at, "MULTIPLE_BODY_PARAMETERS", "Operation cannot have multiple body parameters")
			}
		case "formData":
			forms++
		case "path":
			declared[prm.name] = true
		}
	}
	if bodies > 0 && forms > 0 {
		c.out.errorf(sub(opAt, "parameters"), "INVALID_PARAMETER_COMBINATION",
			"Operation cannot have a body parameter and a formData parameter")
	}

	for _, name := range template {
		if !declared[name] {
			c.out.errorf(opAt, "MISSING_PATH_PARAMETER_DEFINITION", "Path parameter is declared but is not defined: %s", name)
		}
	}
}

// checkPathParam reports a path parameter that is not part of the path
// template or is not required.
func (c *checker20) checkPathParam(prm param, template []string) {
	if prm.in != "path" {
		return
	}
	if !slices.Contains(template, prm.name) {
		c.out.errorf(sub(prm.at, "name"), "UNRESOLVABLE_PATH_PARAMETER", "Path parameter is defined but is not declared: %s", prm.name)
	}
	if !prm.required {
		c.out.errorf(prm.at, "PATH_PARAMETER_NOT_REQUIRED", "Path parameter must be required: %s", prm.name)
	}
}

func (c *checker20) checkMediaTypes(at []string, types []string) {
	for i, mt := range types {
		if !httputil.IsValidMediaType(mt) {
			c.out.warnf(sub(at, strconv.Itoa(i)), "INVALID_CONTENT_TYPE", "Invalid content type: %s", mt)
		}
	}
}

// unusedCodes names the warning raised for each reusable section.
var unusedCodes = map[string]string{
	"definitions": "UNUSED_DEFINITION",
	"parameters":  "UNUSED_PARAMETER",
	"responses":   "UNUSED_RESPONSE",
}

// checkRefs resolves every local $ref in the document and warns about
// reusable definitions nothing refers to. Remote references are not followed.
func (c *checker20) checkRefs() {
	used := make(map[string]map[string]bool)
	walkRefs(map[string]any(c.doc), nil, func(at []string, ref string) {
		if !strings.HasPrefix(ref, "#") {
			return
		}
		if !resolvePointer(c.doc, ref) {
			c.out.errorf(sub(at, "$ref"), "UNRESOLVABLE_REFERENCE", "Reference could not be resolved: %s", ref)
			return
		}
		section, name, ok := pathutil.LocalRefTarget(ref)
		if !ok {
			return
		}
		// a definition referring to itself does not count as a use
		if len(at) >= 2 && at[0] == section && at[1] == name {
			return
		}
		if used[section] == nil {
			used[section] = make(map[string]bool)
		}
		used[section][name] = true
	})

	for _, section := range maputil.SortedKeys(unusedCodes) {
		for _, name := range maputil.SortedKeys(maputil.Map(c.doc, section)) {
			if !used[section][name] {
				c.out.warnf(ptr(section, name), unusedCodes[section], "%s is defined but is not used: #/%s/%s",
					strings.TrimSuffix(section, "s"), section, name)
			}
		}
	}
}

// checkSecurity resolves security requirements against securityDefinitions.
func (c *checker20) checkSecurity() {
	defs := maputil.Map(c.doc, "securityDefinitions")
	used := make(map[string]bool)
	check := func(at []string, reqs []map[string]any) {
		for i, req := range reqs {
			for _, name := range maputil.SortedKeys(req) {
				if _, ok := defs[name]; !ok {
					c.out.errorf(sub(at, strconv.Itoa(i), name), "UNRESOLVABLE_SECURITY_DEFINITION",
						"Security definition could not be resolved: %s", name)
					continue
				}
				used[name] = true
			}
		}
	}

	check(ptr("security"), maputil.Maps(c.doc, "security"))
	paths := maputil.Map(c.doc, "paths")
	for _, p := range maputil.SortedKeys(paths) {
		item, _ := paths[p].(map[string]any)
		for _, method := range httputil.Methods {
			if op := maputil.Map(item, method); op != nil {
				check(ptr("paths", p, method, "security"), maputil.Maps(op, "security"))
			}
		}
	}

	for _, name := range maputil.SortedKeys(defs) {
		if !used[name] {
			c.out.warnf(ptr("securityDefinitions", name), "UNUSED_SECURITY_DEFINITION",
				"Security definition is defined but is not used: %s", name)
		}
	}
}

// walkRefs calls visit for every "$ref" string in v, with the location of
// the object holding it. Keys are visited in sorted order.
func walkRefs(v any, at []string, visit func(at []string, ref string)) {
	switch t := v.(type) {
	case map[string]any:
		for _, k := range maputil.SortedKeys(t) {
			if k == "$ref" {
				if ref, ok := t[k].(string); ok {
					visit(at, ref)
				}
				continue
			}
			walkRefs(t[k], sub(at, k), visit)
		}
	case []any:
		for i, e := range t {
			walkRefs(e, sub(at, strconv.Itoa(i)), visit)
		}
	}
}

// resolvePointer reports whether a local JSON pointer names a value in doc.
func resolvePointer(doc loader.Document, ref string) bool {
	var cur any = map[string]any(doc)
	for _, seg := range issues.ParsePointer(ref) {
		switch t := cur.(type) {
		case map[string]any:
			next, ok := t[seg]
			if !ok {
				return false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(t) {
				return false
			}
			cur = t[i]
		default:
			return false
		}
	}
	return true
}
