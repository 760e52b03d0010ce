package spec

import (
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/swaggertools/internal/httputil"
	"github.com/erraggy/swaggertools/internal/maputil"
	"github.com/erraggy/swaggertools/internal/pathutil"
	"github.com/erraggy/swaggertools/loader"
	"github.com/erraggy/swaggertools/oaserrors"
)

const (
	defaultTitle      = "Title was not specified"
	defaultAPIVersion = "1.0.0"
	defaultTag        = "default"
)

// converter12 builds a Swagger 2.0 document from a Swagger 1.2 set.
type converter12 struct {
	set *loader.LegacyGeneration
	out *Swagger20

	// modelSources records which declaration defined each model
	modelSources map[string]string
	// raw keeps each model's source definition for conflict detection
	raw map[string]any
}

func convert12(set *loader.LegacyGeneration) (*Swagger20, error) {
	c := &converter12{
		set: set,
		out: &Swagger20{
			Swagger: Version20,
			Info:    convertInfo(set.ResourceListing),
			Paths:   make(map[string]PathItem),
		},
		modelSources: make(map[string]string),
		raw:          make(map[string]any),
	}
	if err := c.run(); err != nil {
		return nil, err
	}
	return c.out, nil
}

func (c *converter12) run() error {
	rl := c.set.ResourceListing
	prefixes := c.convertBase()

	for _, api := range maputil.Maps(rl, "apis") {
		if api == nil {
			continue
		}
		c.out.Tags = append(c.out.Tags, Tag{
			Name:        tagName(maputil.String(api, "path")),
			Description: maputil.String(api, "description"),
		})
	}

	for i, d := range c.set.Declarations {
		if err := c.convertModels(d); err != nil {
			return err
		}
		if err := c.convertAPIs(d, prefixes[i]); err != nil {
			return err
		}
	}
	c.linkSubTypes()
	c.out.SecurityDefinitions = convertAuthorizations(maputil.Map(rl, "authorizations"))
	return nil
}

// convertBase derives host, schemes and basePath from the declarations'
// basePath URLs. When declarations disagree, the first one's host wins and
// each declaration's own base path is returned as a prefix for its paths.
func (c *converter12) convertBase() []string {
	prefixes := make([]string, len(c.set.Declarations))
	bases := make([]*url.URL, len(c.set.Declarations))
	var first *url.URL
	for i, d := range c.set.Declarations {
		u, err := url.Parse(maputil.String(d.Document, "basePath"))
		if err != nil || u.Host == "" {
			continue
		}
		bases[i] = u
		if first == nil {
			first = u
		}
	}
	if first == nil {
		return prefixes
	}

	c.out.Host = first.Host
	if first.Scheme != "" {
		c.out.Schemes = []string{first.Scheme}
	}

	shared := true
	for _, u := range bases {
		if u != nil && (u.Host != first.Host || strings.TrimSuffix(u.Path, "/") != strings.TrimSuffix(first.Path, "/")) {
			shared = false
			break
		}
	}
	if shared {
		c.out.BasePath = cleanBasePath(first.Path)
		return prefixes
	}
	for i, u := range bases {
		if u != nil {
			prefixes[i] = strings.TrimSuffix(u.Path, "/")
		}
	}
	return prefixes
}

func (c *converter12) convertModels(d loader.Declaration) error {
	models := maputil.Map(d.Document, "models")
	for _, id := range maputil.SortedKeys(models) {
		model, _ := models[id].(map[string]any)
		if prev, ok := c.raw[id]; ok {
			if !reflect.DeepEqual(prev, models[id]) {
				return &oaserrors.ConversionError{
					SourceVersion: Version12,
					TargetVersion: Version20,
					Message:       fmt.Sprintf("model %s is defined differently in %s and %s", id, c.modelSources[id], d.Source),
				}
			}
			continue
		}
		c.raw[id] = models[id]
		c.modelSources[id] = d.Source
		if c.out.Definitions == nil {
			c.out.Definitions = make(map[string]Schema)
		}
		c.out.Definitions[id] = convertModel(model)
	}
	return nil
}

// linkSubTypes rewrites each subtype definition as an allOf of its parent
// and its own properties.
func (c *converter12) linkSubTypes() {
	for _, id := range maputil.SortedKeys(c.raw) {
		model, _ := c.raw[id].(map[string]any)
		for _, child := range maputil.Strings(model, "subTypes") {
			own, ok := c.out.Definitions[child]
			if !ok || child == id {
				continue
			}
			c.out.Definitions[child] = Schema{
				"allOf": []any{Schema{"$ref": pathutil.DefinitionRef(id)}, own},
			}
		}
	}
}

func (c *converter12) convertAPIs(d loader.Declaration, prefix string) error {
	doc := d.Document
	tag := tagName(maputil.String(doc, "resourcePath"))
	for _, api := range maputil.Maps(doc, "apis") {
		if api == nil {
			continue
		}
		p := prefix + maputil.String(api, "path")
		item, ok := c.out.Paths[p]
		if !ok {
			item = make(PathItem)
			c.out.Paths[p] = item
		}
		for _, op := range maputil.Maps(api, "operations") {
			if op == nil {
				continue
			}
			method := strings.ToLower(maputil.String(op, "method"))
			if !httputil.IsMethod(method) {
				continue
			}
			if _, dup := item[method]; dup {
				return &oaserrors.ConversionError{
					SourceVersion: Version12,
					TargetVersion: Version20,
					Message:       fmt.Sprintf("operation %s %s is defined more than once (last in %s)", strings.ToUpper(method), p, d.Source),
				}
			}
			item[method] = convertOperation(doc, op, tag)
		}
	}
	return nil
}

func convertInfo(rl map[string]any) *Info {
	src := maputil.Map(rl, "info")
	info := &Info{
		Title:          maputil.String(src, "title"),
		Version:        maputil.Scalar(rl["apiVersion"]),
		Description:    maputil.String(src, "description"),
		TermsOfService: maputil.String(src, "termsOfServiceUrl"),
	}
	if info.Title == "" {
		info.Title = defaultTitle
	}
	if info.Version == "" {
		info.Version = defaultAPIVersion
	}
	if email := maputil.String(src, "contact"); email != "" {
		info.Contact = &Contact{Email: email}
	}
	if name := maputil.String(src, "license"); name != "" {
		info.License = &License{Name: name, URL: maputil.String(src, "licenseUrl")}
	}
	return info
}

func convertOperation(decl, op map[string]any, tag string) *Operation {
	out := &Operation{
		Tags:        []string{tag},
		Summary:     maputil.String(op, "summary"),
		Description: maputil.String(op, "notes"),
		OperationID: maputil.String(op, "nickname"),
		Consumes:    firstNonEmpty(maputil.Strings(op, "consumes"), maputil.Strings(decl, "consumes")),
		Produces:    firstNonEmpty(maputil.Strings(op, "produces"), maputil.Strings(decl, "produces")),
		Deprecated:  maputil.Bool(op, "deprecated"),
		Responses:   make(map[string]*Response),
	}

	for _, param := range maputil.Maps(op, "parameters") {
		if param != nil {
			out.Parameters = append(out.Parameters, convertParameter(param))
		}
	}

	success := false
	for _, msg := range maputil.Maps(op, "responseMessages") {
		if msg == nil {
			continue
		}
		code := maputil.Scalar(msg["code"])
		resp := &Response{Description: maputil.String(msg, "message")}
		if model := maputil.String(msg, "responseModel"); model != "" {
			resp.Schema = typeRef(model)
		}
		out.Responses[code] = resp
		success = success || httputil.IsSuccess(code)
	}
	if !success {
		if schema := dataTypeSchema(op); schema != nil {
			out.Responses["200"] = &Response{Description: "Success", Schema: schema}
		} else {
			out.Responses["200"] = &Response{Description: "No response was specified"}
		}
	}

	auths := maputil.Map(op, "authorizations")
	if _, ok := op["authorizations"]; !ok {
		auths = maputil.Map(decl, "authorizations")
	}
	for _, name := range maputil.SortedKeys(auths) {
		scopes := make([]string, 0)
		list, _ := auths[name].([]any)
		for _, raw := range list {
			s, _ := raw.(map[string]any)
			if scope := maputil.String(s, "scope"); scope != "" {
				scopes = append(scopes, scope)
			}
		}
		out.Security = append(out.Security, map[string][]string{name: scopes})
	}
	return out
}

func convertParameter(param map[string]any) *Parameter {
	in := maputil.String(param, "paramType")
	if in == "form" {
		in = "formData"
	}
	out := &Parameter{
		Name:        maputil.String(param, "name"),
		In:          in,
		Description: maputil.String(param, "description"),
		Required:    maputil.Bool(param, "required") || in == "path",
	}
	if in == "body" {
		out.Schema = dataTypeSchema(param)
		if out.Schema == nil {
			out.Schema = Schema{"type": "object"}
		}
		return out
	}

	t := maputil.String(param, "type")
	switch {
	case t == "File":
		out.Type = "file"
	case t == "array":
		out.Type = "array"
		out.Items = itemsSchema(maputil.Map(param, "items"))
		out.CollectionFormat = "csv"
	case primitives12[t] && t != "void":
		out.Type = t
	default:
		// model types only exist in bodies
		out.Type = "string"
	}
	out.Format = maputil.String(param, "format")
	out.Enum = convertEnum(out.Type, maputil.Strings(param, "enum"))
	out.Default = convertValue(out.Type, param["defaultValue"])
	out.Minimum = number(param, "minimum")
	out.Maximum = number(param, "maximum")
	out.UniqueItems = maputil.Bool(param, "uniqueItems")

	if maputil.Bool(param, "allowMultiple") && out.Type != "array" {
		items := Schema{"type": out.Type}
		if out.Format != "" {
			items["format"] = out.Format
		}
		if len(out.Enum) > 0 {
			items["enum"] = out.Enum
		}
		out.Items = items
		out.Type, out.Format, out.Enum = "array", "", nil
		out.CollectionFormat = "csv"
	}
	return out
}

func convertModel(model map[string]any) Schema {
	s := Schema{"type": "object"}
	if desc := maputil.String(model, "description"); desc != "" {
		s["description"] = desc
	}
	required := maputil.Strings(model, "required")

	props := maputil.Map(model, "properties")
	if len(props) > 0 {
		out := make(map[string]any, len(props))
		for _, name := range maputil.SortedKeys(props) {
			prop, _ := props[name].(map[string]any)
			ps := dataTypeSchema(prop)
			if ps == nil {
				ps = Schema{}
			}
			if desc := maputil.String(prop, "description"); desc != "" {
				ps["description"] = desc
			}
			out[name] = ps
		}
		s["properties"] = out
	}

	if disc := maputil.String(model, "discriminator"); disc != "" {
		s["discriminator"] = disc
		if !slices.Contains(required, disc) {
			required = append(required, disc)
		}
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func convertAuthorizations(auths map[string]any) map[string]*SecurityScheme {
	if len(auths) == 0 {
		return nil
	}
	out := make(map[string]*SecurityScheme, len(auths))
	for name, raw := range auths {
		def, _ := raw.(map[string]any)
		switch maputil.String(def, "type") {
		case "basicAuth":
			out[name] = &SecurityScheme{Type: "basic"}
		case "apiKey":
			out[name] = &SecurityScheme{
				Type: "apiKey",
				Name: maputil.String(def, "keyname"),
				In:   maputil.String(def, "passAs"),
			}
		case "oauth2":
			ss := &SecurityScheme{Type: "oauth2", Scopes: make(map[string]string)}
			for _, s := range maputil.Maps(def, "scopes") {
				if s != nil {
					ss.Scopes[maputil.String(s, "scope")] = maputil.String(s, "description")
				}
			}
			grants := maputil.Map(def, "grantTypes")
			if implicit := maputil.Map(grants, "implicit"); implicit != nil {
				ss.Flow = "implicit"
				ss.AuthorizationURL = maputil.String(maputil.Map(implicit, "loginEndpoint"), "url")
			} else if code := maputil.Map(grants, "authorization_code"); code != nil {
				ss.Flow = "accessCode"
				ss.AuthorizationURL = maputil.String(maputil.Map(code, "tokenRequestEndpoint"), "url")
				ss.TokenURL = maputil.String(maputil.Map(code, "tokenEndpoint"), "url")
			}
			out[name] = ss
		}
	}
	return out
}

// dataTypeSchema converts a Swagger 1.2 data type to a schema. It returns
// nil for void and for objects that declare no type.
func dataTypeSchema(obj map[string]any) Schema {
	if ref := maputil.String(obj, "$ref"); ref != "" {
		return typeRef(ref)
	}
	t := maputil.String(obj, "type")
	switch t {
	case "", "void":
		return nil
	case "array":
		s := Schema{"type": "array"}
		if items := maputil.Map(obj, "items"); items != nil {
			s["items"] = itemsSchema(items)
		}
		if maputil.Bool(obj, "uniqueItems") {
			s["uniqueItems"] = true
		}
		return s
	case "File":
		return Schema{"type": "file"}
	case "integer", "number", "string", "boolean":
		s := Schema{"type": t}
		if f := maputil.String(obj, "format"); f != "" {
			s["format"] = f
		}
		if enum := convertEnum(t, maputil.Strings(obj, "enum")); len(enum) > 0 {
			s["enum"] = enum
		}
		if def := convertValue(t, obj["defaultValue"]); def != nil {
			s["default"] = def
		}
		if lo := number(obj, "minimum"); lo != nil {
			s["minimum"] = *lo
		}
		if hi := number(obj, "maximum"); hi != nil {
			s["maximum"] = *hi
		}
		return s
	default:
		return typeRef(t)
	}
}

func itemsSchema(items map[string]any) Schema {
	if ref := maputil.String(items, "$ref"); ref != "" {
		return typeRef(ref)
	}
	t := maputil.String(items, "type")
	switch {
	case t == "":
		return Schema{}
	case primitives12[t]:
		s := Schema{"type": t}
		if f := maputil.String(items, "format"); f != "" {
			s["format"] = f
		}
		return s
	default:
		return typeRef(t)
	}
}

func typeRef(model string) Schema {
	return Schema{"$ref": pathutil.DefinitionRef(model)}
}

// convertValue turns 1.2 string-encoded scalars into typed values.
func convertValue(typ string, v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	switch typ {
	case "integer", "number":
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
	case "boolean":
		switch s {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return s
}

func convertEnum(typ string, values []string) []any {
	if len(values) == 0 {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = convertValue(typ, v)
	}
	return out
}

func number(obj map[string]any, key string) *float64 {
	if n, ok := maputil.Number(obj, key); ok {
		return &n
	}
	return nil
}

func tagName(resourcePath string) string {
	if name := strings.Trim(resourcePath, "/"); name != "" {
		return name
	}
	return defaultTag
}

func cleanBasePath(p string) string {
	if p = strings.TrimSuffix(p, "/"); p == "" {
		return "/"
	}
	return p
}

func firstNonEmpty(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
