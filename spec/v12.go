package spec

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/swaggertools/internal/httputil"
	"github.com/erraggy/swaggertools/internal/maputil"
	"github.com/erraggy/swaggertools/internal/pathutil"
	"github.com/erraggy/swaggertools/loader"
	"github.com/erraggy/swaggertools/oaserrors"
)

// primitives12 are the Swagger 1.2 type names that do not refer to a model.
var primitives12 = map[string]bool{
	"integer": true,
	"number":  true,
	"string":  true,
	"boolean": true,
	"array":   true,
	"void":    true,
	"File":    true,
}

type v12 struct{}

// V12 returns the Swagger 1.2 capability.
func V12() Capability { return v12{} }

func (v12) Version() string { return Version12 }

func (v12) DocsURL() string {
	return "https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md"
}

func (v12) SchemasURL() string {
	return "https://github.com/OAI/OpenAPI-Specification/tree/main/_archive_/schemas/v1.2"
}

func (v12) Validate(ctx context.Context, set loader.DocumentSet) (*Results, error) {
	legacy, ok := set.(*loader.LegacyGeneration)
	if !ok || legacy == nil {
		return nil, &oaserrors.ConfigError{
			Option:  "documents",
			Message: fmt.Sprintf("Swagger 1.2 validation needs a resource listing, got %T", set),
		}
	}
	return validate12(ctx, legacy)
}

func (v12) Convert(ctx context.Context, set *loader.LegacyGeneration, opts ConvertOptions) (*Swagger20, error) {
	if set == nil || set.ResourceListing == nil {
		return nil, &oaserrors.ConversionError{
			SourceVersion: Version12,
			TargetVersion: Version20,
			Message:       "no resource listing was supplied",
		}
	}
	if !opts.SkipValidation {
		results, err := validate12(ctx, set)
		if err != nil {
			return nil, err
		}
		if !results.Valid() {
			return nil, &ValidationFailedError{Results: results}
		}
	}
	return convert12(set)
}

// validate12 checks the resource listing and every API declaration against
// their schemas, then runs the semantic checks if all of them are
// structurally valid.
func validate12(ctx context.Context, set *loader.LegacyGeneration) (*Results, error) {
	root := &collector{source: set.Source}
	found, err := validateSchema(schemaResourceListing, set.ResourceListing)
	if err != nil {
		return nil, err
	}
	root.addAll(found)
	structural := len(found)

	decls := make([]*collector, len(set.Declarations))
	for i, d := range set.Declarations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		decls[i] = &collector{source: d.Source}
		found, err := validateSchema(schemaAPIDeclaration, d.Document)
		if err != nil {
			return nil, err
		}
		decls[i].addAll(found)
		structural += len(found)
	}

	if structural == 0 {
		c := &checker12{
			set:        set,
			root:       root,
			decls:      decls,
			authScopes: make(map[string]map[string]bool),
			usedAuths:  make(map[string]bool),
		}
		c.run()
	}

	results := &Results{Version: Version12, Source: set.Source}
	results.Errors, results.Warnings = root.sorted()
	for i, d := range set.Declarations {
		errs, warns := decls[i].sorted()
		results.APIDeclarations = append(results.APIDeclarations, DeclarationResults{
			Index:        d.Index,
			Source:       d.Source,
			ResourcePath: maputil.String(d.Document, "resourcePath"),
			Errors:       errs,
			Warnings:     warns,
		})
	}
	return results, nil
}

// checker12 runs the cross-document checks of a Swagger 1.2 set.
type checker12 struct {
	set   *loader.LegacyGeneration
	root  *collector
	decls []*collector

	// authScopes maps authorization names to their oauth2 scopes; the value
	// is nil for authorizations that have no scopes.
	authScopes map[string]map[string]bool
	usedAuths  map[string]bool
}

func (c *checker12) run() {
	listed := c.checkResourceListing()

	declared := make(map[string]int)
	for i, d := range c.set.Declarations {
		c.checkDeclaration(c.decls[i], d.Document, listed, declared)
	}

	if len(c.set.Declarations) == 0 {
		return
	}
	for _, p := range maputil.SortedKeys(listed) {
		if _, ok := declared[p]; !ok {
			c.root.warnf(ptr("apis", listed[p], "path"), "UNUSED_RESOURCE", "Resource is defined but is not used: %s", p)
		}
	}
	for _, name := range maputil.SortedKeys(c.authScopes) {
		if !c.usedAuths[name] {
			c.root.warnf(ptr("authorizations", name), "UNUSED_AUTHORIZATION", "Authorization is defined but is not used: %s", name)
		}
	}
}

// checkResourceListing reports duplicate resource paths and records the
// declared authorizations. It returns the index of each listed path.
func (c *checker12) checkResourceListing() map[string]int {
	rl := c.set.ResourceListing
	listed := make(map[string]int)
	for i, api := range maputil.Maps(rl, "apis") {
		p := maputil.String(api, "path")
		if _, dup := listed[p]; dup {
			c.root.errorf(ptr("apis", i, "path"), "DUPLICATE_RESOURCE_PATH", "Resource path already defined: %s", p)
			continue
		}
		listed[p] = i
	}

	for name, raw := range maputil.Map(rl, "authorizations") {
		def, _ := raw.(map[string]any)
		if maputil.String(def, "type") != "oauth2" {
			c.authScopes[name] = nil
			continue
		}
		scopes := make(map[string]bool)
		for _, s := range maputil.Maps(def, "scopes") {
			scopes[maputil.String(s, "scope")] = true
		}
		c.authScopes[name] = scopes
	}
	return listed
}

func (c *checker12) checkDeclaration(dc *collector, doc loader.Document, listed, declared map[string]int) {
	if rp := maputil.String(doc, "resourcePath"); rp != "" {
		if _, dup := declared[rp]; dup {
			dc.errorf(ptr("resourcePath"), "DUPLICATE_RESOURCEPATH", "Resource path already defined by another API declaration: %s", rp)
		} else {
			declared[rp] = len(declared)
		}
		if _, ok := listed[rp]; !ok {
			dc.errorf(ptr("resourcePath"), "UNRESOLVABLE_RESOURCEPATH", "Resource path is not defined in the resource listing: %s", rp)
		}
	}

	models := maputil.Map(doc, "models")
	used := make(map[string]bool)
	refModel := func(at []string, id string) {
		if id == "" || primitives12[id] {
			return
		}
		used[id] = true
		if _, ok := models[id]; !ok {
			dc.errorf(at, "UNRESOLVABLE_MODEL", "Model could not be resolved: %s", id)
		}
	}

	c.checkModels(dc, models, refModel)
	c.checkAuthRefs(dc, ptr("authorizations"), maputil.Map(doc, "authorizations"))

	apiPaths := make(map[string]bool)
	nicknames := make(map[string]bool)
	for ai, api := range maputil.Maps(doc, "apis") {
		at := ptr("apis", ai)
		p := maputil.String(api, "path")

		// "/pets/{id}" and "/pets/{petId}" are the same path
		normalized := pathutil.PathParamRegex.ReplaceAllString(p, "{}")
		if apiPaths[normalized] {
			dc.errorf(sub(at, "path"), "DUPLICATE_API_PATH", "API path (or equivalent) already defined: %s", p)
		}
		apiPaths[normalized] = true
		if err := pathutil.ValidateTemplate(p); err != nil {
			dc.errorf(sub(at, "path"), "INVALID_API_PATH", "Invalid path template %s: %v", p, err)
		}
		template := pathutil.TemplateParams(p)

		methods := make(map[string]bool)
		for oi, op := range maputil.Maps(api, "operations") {
			opAt := sub(at, "operations", strconv.Itoa(oi))

			method := strings.ToUpper(maputil.String(op, "method"))
			if methods[method] {
				dc.errorf(sub(opAt, "method"), "DUPLICATE_OPERATION_METHOD", "Operation method already defined: %s", method)
			}
			methods[method] = true

			if nick := maputil.String(op, "nickname"); nick != "" {
				if nicknames[nick] {
					dc.errorf(sub(opAt, "nickname"), "DUPLICATE_OPERATION_NICKNAME", "Operation nickname already defined: %s", nick)
				}
				nicknames[nick] = true
			}

			c.checkAuthRefs(dc, sub(opAt, "authorizations"), maputil.Map(op, "authorizations"))
			c.checkDataType(dc, opAt, op, refModel, true)
			c.checkParameters(dc, opAt, op, template, refModel)
			c.checkResponseMessages(dc, opAt, op, refModel)
		}
	}

	for _, id := range maputil.SortedKeys(models) {
		if !used[id] {
			dc.warnf(ptr("models", id), "UNUSED_MODEL", "Model is defined but is not used: %s", id)
		}
	}
}

func (c *checker12) checkModels(dc *collector, models map[string]any, refModel func([]string, string)) {
	parents := make(map[string]string)
	for _, id := range maputil.SortedKeys(models) {
		model, _ := models[id].(map[string]any)
		at := ptr("models", id)

		if mid := maputil.String(model, "id"); mid != "" && mid != id {
			dc.errorf(sub(at, "id"), "MODEL_ID_MISMATCH", "Model id does not match its key %s: %s", id, mid)
		}

		props := maputil.Map(model, "properties")
		for ri, req := range maputil.Strings(model, "required") {
			if _, ok := props[req]; !ok {
				dc.errorf(sub(at, "required", strconv.Itoa(ri)), "MISSING_REQUIRED_MODEL_PROPERTY",
					"Model requires property but it is not defined: %s", req)
			}
		}

		// References from a model to itself do not count as usage.
		refOther := func(loc []string, ref string) {
			if ref != id {
				refModel(loc, ref)
			}
		}
		for _, name := range maputil.SortedKeys(props) {
			prop, _ := props[name].(map[string]any)
			c.checkDataType(dc, sub(at, "properties", name), prop, refOther, false)
		}

		for si, child := range maputil.Strings(model, "subTypes") {
			loc := sub(at, "subTypes", strconv.Itoa(si))
			if child == id {
				dc.errorf(loc, "CYCLICAL_MODEL_INHERITANCE", "Model cannot be a subtype of itself: %s", id)
				continue
			}
			if parent, ok := parents[child]; ok && parent != id {
				dc.errorf(loc, "MULTIPLE_MODEL_INHERITANCE", "Model %s is already a subtype of %s", child, parent)
			}
			parents[child] = id
			refModel(loc, child)
		}

		if disc := maputil.String(model, "discriminator"); disc != "" {
			if _, ok := props[disc]; !ok {
				dc.errorf(sub(at, "discriminator"), "INVALID_DISCRIMINATOR", "Discriminator property is not defined: %s", disc)
			}
		}
	}
}

// checkDataType resolves the model references of a data type (operation,
// parameter, or model property).
func (c *checker12) checkDataType(dc *collector, at []string, obj map[string]any, refModel func([]string, string), allowVoid bool) {
	if ref := maputil.String(obj, "$ref"); ref != "" {
		refModel(sub(at, "$ref"), ref)
	}
	switch t := maputil.String(obj, "type"); t {
	case "":
	case "array":
		items := maputil.Map(obj, "items")
		if items == nil {
			dc.errorf(at, "OBJECT_MISSING_REQUIRED_PROPERTY", "Array type requires an items definition")
			return
		}
		if ref := maputil.String(items, "$ref"); ref != "" {
			refModel(sub(at, "items", "$ref"), ref)
		}
		if it := maputil.String(items, "type"); it != "" {
			refModel(sub(at, "items", "type"), it)
		}
	case "void":
		if !allowVoid {
			dc.errorf(sub(at, "type"), "INVALID_TYPE", "Type void is only allowed for operations")
		}
	default:
		refModel(sub(at, "type"), t)
	}
}

func (c *checker12) checkParameters(dc *collector, opAt []string, op map[string]any, template []string, refModel func([]string, string)) {
	declared := make(map[string]bool)
	seen := make(map[string]bool)
	bodies := 0
	for pi, param := range maputil.Maps(op, "parameters") {
		at := sub(opAt, "parameters", strconv.Itoa(pi))
		name := maputil.String(param, "name")
		paramType := maputil.String(param, "paramType")

		key := paramType + ":" + name
		if seen[key] {
			dc.errorf(sub(at, "name"), "DUPLICATE_PARAMETER", "Parameter already defined: %s", name)
		}
		seen[key] = true

		switch paramType {
		case "path":
			declared[name] = true
			if !slices.Contains(template, name) {
				dc.errorf(sub(at, "name"), "UNRESOLVABLE_API_PATH_PARAMETER", "API path parameter could not be resolved: %s", name)
			}
			if !maputil.Bool(param, "required") {
				dc.errorf(sub(at, "required"), "PATH_PARAMETER_NOT_REQUIRED", "Path parameter must be required: %s", name)
			}
		case "body":
			bodies++
			if bodies > 1 {
				dc.errorf(at, "DUPLICATE_BODY_PARAMETER", "Operation already has a body parameter: %s", name)
			}
		}

		t := maputil.String(param, "type")
		if paramType != "body" && t != "" && !primitives12[t] {
			dc.errorf(sub(at, "type"), "INVALID_PARAMETER_TYPE", "Only body parameters may use a model type: %s", t)
			continue
		}
		c.checkDataType(dc, at, param, refModel, false)
	}

	for _, name := range template {
		if !declared[name] {
			dc.errorf(sub(opAt, "parameters"), "MISSING_API_PATH_PARAMETER", "API requires path parameter but it is not defined: %s", name)
		}
	}
}

func (c *checker12) checkResponseMessages(dc *collector, opAt []string, op map[string]any, refModel func([]string, string)) {
	codes := make(map[string]bool)
	for ri, msg := range maputil.Maps(op, "responseMessages") {
		at := sub(opAt, "responseMessages", strconv.Itoa(ri))
		code, _ := maputil.Number(msg, "code")
		key := maputil.Scalar(msg["code"])
		if codes[key] {
			dc.errorf(sub(at, "code"), "DUPLICATE_RESPONSE_MESSAGE_CODE", "Response message code already defined: %s", key)
		}
		codes[key] = true
		if !httputil.IsValidStatus(int(code)) {
			dc.errorf(sub(at, "code"), "INVALID_RESPONSE_CODE", "Invalid HTTP status code: %s", key)
		}
		refModel(sub(at, "responseModel"), maputil.String(msg, "responseModel"))
	}
}

// checkAuthRefs resolves authorization references against the resource
// listing, including oauth2 scopes.
func (c *checker12) checkAuthRefs(dc *collector, at []string, refs map[string]any) {
	for _, name := range maputil.SortedKeys(refs) {
		scopes, ok := c.authScopes[name]
		if !ok {
			dc.errorf(sub(at, name), "UNRESOLVABLE_AUTHORIZATION", "Authorization could not be resolved: %s", name)
			continue
		}
		c.usedAuths[name] = true
		if scopes == nil {
			continue
		}
		list, _ := refs[name].([]any)
		for si, raw := range list {
			s, _ := raw.(map[string]any)
			scope := maputil.String(s, "scope")
			if !scopes[scope] {
				dc.errorf(sub(at, name, strconv.Itoa(si), "scope"), "UNRESOLVABLE_AUTHORIZATION_SCOPE",
					"Authorization scope could not be resolved: %s", scope)
			}
		}
	}
}

// ptr builds pointer segments from strings and indexes.
func ptr(parts ...any) []string {
	segs := make([]string, len(parts))
	for i, p := range parts {
		switch v := p.(type) {
		case string:
			segs[i] = v
		case int:
			segs[i] = strconv.Itoa(v)
		default:
			segs[i] = fmt.Sprint(v)
		}
	}
	return segs
}

// sub extends a pointer without aliasing the parent's backing array.
func sub(base []string, segs ...string) []string {
	out := make([]string, 0, len(base)+len(segs))
	out = append(out, base...)
	return append(out, segs...)
}
