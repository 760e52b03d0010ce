package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/swaggertools/loader"
	"github.com/erraggy/swaggertools/oaserrors"
)

func TestV20_ValidatePetstore(t *testing.T) {
	set := acquire(t, "v2.0/petstore.yaml")

	results, err := V20().Validate(t.Context(), set)
	require.NoError(t, err)
	assert.False(t, results.HasIssues(), "unexpected issues: %+v", results.Reports())
	assert.Equal(t, Version20, results.Version)
	assert.Equal(t, "../testdata/v2.0/petstore.yaml", results.Source)
	assert.Empty(t, results.APIDeclarations)
}

func TestV20_ValidateInvalid(t *testing.T) {
	set := acquire(t, "v2.0/invalid.json")

	results, err := V20().Validate(t.Context(), set)
	require.NoError(t, err)
	assert.False(t, results.Valid())

	assert.ElementsMatch(t,
		[]string{"DUPLICATE_OPERATIONID", "MISSING_PATH_PARAMETER_DEFINITION", "UNRESOLVABLE_REFERENCE"},
		codes(results.Errors))
	assert.Equal(t, []string{"UNUSED_DEFINITION"}, codes(results.Warnings))
	assert.Equal(t, "#/definitions/Unused", results.Warnings[0].Pointer())
	assert.Equal(t, "definition is defined but is not used: #/definitions/Unused", results.Warnings[0].Message)

	for _, issue := range results.Errors {
		assert.Equal(t, "../testdata/v2.0/invalid.json", issue.Source)
		if issue.Code == "UNRESOLVABLE_REFERENCE" {
			assert.Equal(t, "#/paths/~1pets~1{id}/get/responses/200/schema/$ref", issue.Pointer())
		}
	}
}

func TestV20_StructuralErrorsSkipSemanticChecks(t *testing.T) {
	doc := petstoreDoc()
	delete(doc, "info")

	results := validate20Doc(t, doc)
	assert.Equal(t, []string{"OBJECT_MISSING_REQUIRED_PROPERTY"}, codes(results.Errors))
	assert.Empty(t, results.Warnings)
}

func TestV20_SemanticChecks(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(doc map[string]any)
		errors   []string
		warnings []string
	}{
		{
			name: "path parameter problems",
			mutate: func(doc map[string]any) {
				setParams(doc, "/pets/{id}", "get",
					map[string]any{"name": "id", "in": "path", "type": "string"},
					map[string]any{"name": "other", "in": "path", "required": true, "type": "string"},
				)
			},
			errors: []string{"PATH_PARAMETER_NOT_REQUIRED", "UNRESOLVABLE_PATH_PARAMETER"},
		},
		{
			name: "duplicate parameters",
			mutate: func(doc map[string]any) {
				setParams(doc, "/pets", "get",
					map[string]any{"name": "limit", "in": "query", "type": "integer"},
					map[string]any{"name": "limit", "in": "query", "type": "integer"},
				)
			},
			errors: []string{"DUPLICATE_PARAMETER"},
		},
		{
			name: "body and form parameters",
			mutate: func(doc map[string]any) {
				setParams(doc, "/pets", "get",
					map[string]any{"name": "a", "in": "body", "schema": map[string]any{"type": "object"}},
					map[string]any{"name": "b", "in": "body", "schema": map[string]any{"type": "object"}},
					map[string]any{"name": "c", "in": "formData", "type": "string"},
				)
			},
			errors: []string{"INVALID_PARAMETER_COMBINATION", "MULTIPLE_BODY_PARAMETERS"},
		},
		{
			name: "path-level parameters satisfy the template",
			mutate: func(doc map[string]any) {
				paths := doc["paths"].(map[string]any)
				item := paths["/pets/{id}"].(map[string]any)
				get := item["get"].(map[string]any)
				item["parameters"] = get["parameters"]
				delete(get, "parameters")
			},
		},
		{
			name: "invalid response code",
			mutate: func(doc map[string]any) {
				responses := operationOf(doc, "/pets", "get")["responses"].(map[string]any)
				responses["2XX"] = map[string]any{"description": "wildcard"}
			},
			errors: []string{"INVALID_RESPONSE_CODE"},
		},
		{
			name: "invalid path template",
			mutate: func(doc map[string]any) {
				paths := doc["paths"].(map[string]any)
				paths["/pets/{id"] = map[string]any{}
			},
			errors: []string{"INVALID_PATH"},
		},
		{
			name: "security",
			mutate: func(doc map[string]any) {
				doc["securityDefinitions"] = map[string]any{
					"basic":  map[string]any{"type": "basic"},
					"apiKey": map[string]any{"type": "apiKey", "name": "key", "in": "header"},
				}
				doc["security"] = []any{map[string]any{"basic": []any{}}}
				operationOf(doc, "/pets", "get")["security"] = []any{map[string]any{"oauth": []any{}}}
			},
			errors:   []string{"UNRESOLVABLE_SECURITY_DEFINITION"},
			warnings: []string{"UNUSED_SECURITY_DEFINITION"},
		},
		{
			name: "unused reusable items",
			mutate: func(doc map[string]any) {
				doc["parameters"] = map[string]any{
					"skip": map[string]any{"name": "skip", "in": "query", "type": "integer"},
				}
				doc["responses"] = map[string]any{
					"NotFound": map[string]any{"description": "not found"},
				}
			},
			warnings: []string{"UNUSED_PARAMETER", "UNUSED_RESPONSE"},
		},
		{
			name: "parameter reference",
			mutate: func(doc map[string]any) {
				doc["parameters"] = map[string]any{
					"petId": map[string]any{"name": "id", "in": "path", "required": true, "type": "integer"},
				}
				setParams(doc, "/pets/{id}", "get", map[string]any{"$ref": "#/parameters/petId"})
			},
		},
		{
			name: "invalid content type",
			mutate: func(doc map[string]any) {
				operationOf(doc, "/pets", "post")["consumes"] = []any{"not a media type"}
			},
			warnings: []string{"INVALID_CONTENT_TYPE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := petstoreDoc()
			tt.mutate(doc)

			results := validate20Doc(t, doc)
			assert.ElementsMatch(t, orEmpty(tt.errors), codes(results.Errors), "%+v", results.Errors)
			assert.ElementsMatch(t, orEmpty(tt.warnings), codes(results.Warnings), "%+v", results.Warnings)
		})
	}
}

func TestV20_ConvertUnsupported(t *testing.T) {
	_, err := V20().Convert(t.Context(), petstore12(t), ConvertOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConversion))
	assert.Contains(t, err.Error(), "only Swagger 1.2 documents can be converted")
}

func validate20Doc(t *testing.T, doc map[string]any) *Results {
	t.Helper()
	results, err := V20().Validate(t.Context(), &loader.CurrentGeneration{Source: "inline.json", Document: doc})
	require.NoError(t, err)
	return results
}

// petstoreDoc returns a minimal valid document that tests can mutate.
func petstoreDoc() map[string]any {
	return map[string]any{
		"swagger": "2.0",
		"info":    map[string]any{"title": "Petstore", "version": "1.0.0"},
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"operationId": "listPets",
					"responses": map[string]any{
						"200": map[string]any{
							"description": "pets",
							"schema": map[string]any{
								"type":  "array",
								"items": map[string]any{"$ref": "#/definitions/Pet"},
							},
						},
					},
				},
				"post": map[string]any{
					"operationId": "addPet",
					"responses":   map[string]any{"201": map[string]any{"description": "created"}},
				},
			},
			"/pets/{id}": map[string]any{
				"get": map[string]any{
					"operationId": "getPet",
					"parameters": []any{
						map[string]any{"name": "id", "in": "path", "required": true, "type": "integer"},
					},
					"responses": map[string]any{"200": map[string]any{"description": "pet"}},
				},
			},
		},
		"definitions": map[string]any{
			"Pet": map[string]any{"type": "object"},
		},
	}
}

func operationOf(doc map[string]any, path, method string) map[string]any {
	return doc["paths"].(map[string]any)[path].(map[string]any)[method].(map[string]any)
}

func setParams(doc map[string]any, path, method string, params ...any) {
	operationOf(doc, path, method)["parameters"] = params
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
