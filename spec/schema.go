package spec

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/erraggy/swaggertools/internal/issues"
	"github.com/erraggy/swaggertools/loader"
)

//go:embed schemas
var schemaFS embed.FS

// schemaBaseURL is the resource URL the embedded schemas are registered under.
const schemaBaseURL = "https://swagger-tools.local/schemas/"

// Embedded schema names
const (
	schemaResourceListing = "v1.2/resourceListing.json"
	schemaAPIDeclaration  = "v1.2/apiDeclaration.json"
	schemaSwagger20       = "v2.0/schema.json"
)

var compiledSchemas = map[string]func() (*jsonschema.Schema, error){
	schemaResourceListing: sync.OnceValues(func() (*jsonschema.Schema, error) { return compileSchema(schemaResourceListing) }),
	schemaAPIDeclaration:  sync.OnceValues(func() (*jsonschema.Schema, error) { return compileSchema(schemaAPIDeclaration) }),
	schemaSwagger20:       sync.OnceValues(func() (*jsonschema.Schema, error) { return compileSchema(schemaSwagger20) }),
}

// compileSchema compiles one embedded draft-04 schema
func compileSchema(name string) (*jsonschema.Schema, error) {
	data, err := schemaFS.ReadFile(path.Join("schemas", name))
	if err != nil {
		return nil, fmt.Errorf("spec: reading schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft4
	url := schemaBaseURL + name
	if err := c.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("spec: loading schema %s: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("spec: compiling schema %s: %w", name, err)
	}
	return compiled, nil
}

// keywordCodes maps the failing JSON Schema keyword to an issue code.
var keywordCodes = map[string]string{
	"required":             "OBJECT_MISSING_REQUIRED_PROPERTY",
	"additionalProperties": "OBJECT_ADDITIONAL_PROPERTIES",
	"minProperties":        "OBJECT_PROPERTIES_MINIMUM",
	"type":                 "INVALID_TYPE",
	"enum":                 "ENUM_MISMATCH",
	"pattern":              "PATTERN",
	"maxLength":            "MAX_LENGTH",
	"minItems":             "ARRAY_LENGTH_SHORT",
	"uniqueItems":          "ARRAY_UNIQUE",
	"anyOf":                "ANY_OF_MISSING",
	"oneOf":                "ONE_OF_MISSING",
}

// validateSchema checks doc against an embedded schema and returns one
// error-level issue per failing keyword.
func validateSchema(name string, doc loader.Document) ([]issues.Issue, error) {
	compile, ok := compiledSchemas[name]
	if !ok {
		return nil, fmt.Errorf("spec: unknown schema %s", name)
	}
	schema, err := compile()
	if err != nil {
		return nil, err
	}

	err = schema.Validate(map[string]any(doc))
	if err == nil {
		return nil, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, fmt.Errorf("spec: validating against %s: %w", name, err)
	}

	var found []issues.Issue
	collectSchemaIssues(verr, &found)
	return found, nil
}

// collectSchemaIssues walks a validation error tree down to its leaves.
// anyOf and oneOf failures are reported as a single issue rather than one per
// rejected alternative.
func collectSchemaIssues(verr *jsonschema.ValidationError, out *[]issues.Issue) {
	keyword := lastSegment(verr.KeywordLocation)
	if len(verr.Causes) == 0 || keyword == "anyOf" || keyword == "oneOf" {
		code, ok := keywordCodes[keyword]
		if !ok {
			code = "SCHEMA_VALIDATION_FAILED"
		}
		*out = append(*out, issues.Errorf(issues.ParsePointer(verr.InstanceLocation), code, "%s", verr.Message))
		return
	}
	for _, cause := range verr.Causes {
		collectSchemaIssues(cause, out)
	}
}

func lastSegment(keywordLocation string) string {
	if i := strings.LastIndexByte(keywordLocation, '/'); i >= 0 {
		return keywordLocation[i+1:]
	}
	return keywordLocation
}
