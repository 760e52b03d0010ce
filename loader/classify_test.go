package loader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/swaggertools/oaserrors"
)

func TestClassify_Current(t *testing.T) {
	docs := []Sourced{
		{Source: "swagger.json", Document: Document{"swagger": "2.0"}},
		{Source: "extra.json", Document: Document{"swaggerVersion": "1.2"}},
	}

	set, err := Classify(docs)
	require.NoError(t, err)

	cur, ok := set.(*CurrentGeneration)
	require.True(t, ok, "expected *CurrentGeneration, got %T", set)
	assert.Equal(t, "swagger.json", cur.Source)
	assert.Equal(t, "2.0", cur.Version())
	assert.Equal(t, []string{"extra.json"}, cur.Ignored)
	assert.Equal(t, []string{"swagger.json"}, cur.Sources())
}

func TestClassify_LegacyKeepsDeclarationOrder(t *testing.T) {
	docs := []Sourced{
		{Source: "api-docs.json", Document: Document{"swaggerVersion": "1.2"}},
		{Source: "c.json", Document: Document{"resourcePath": "/c"}},
		{Source: "a.json", Document: Document{"resourcePath": "/a"}},
		{Source: "b.json", Document: Document{"resourcePath": "/b"}},
	}

	set, err := Classify(docs)
	require.NoError(t, err)

	legacy, ok := set.(*LegacyGeneration)
	require.True(t, ok, "expected *LegacyGeneration, got %T", set)
	assert.Equal(t, "1.2", legacy.Version())
	require.Len(t, legacy.Declarations, 3)
	for i, want := range []string{"/c", "/a", "/b"} {
		assert.Equal(t, i, legacy.Declarations[i].Index)
		assert.Equal(t, want, legacy.Declarations[i].Document["resourcePath"])
	}
	assert.Equal(t, []string{"api-docs.json", "c.json", "a.json", "b.json"}, legacy.Sources())
	assert.Len(t, legacy.APIDeclarations(), 3)
}

func TestClassify_SkipsAbsentDeclarations(t *testing.T) {
	docs := []Sourced{
		{Source: "api-docs.json", Document: Document{"swaggerVersion": "1.2"}},
		{Source: "null.json"},
		{Source: "pets.json", Document: Document{"resourcePath": "/pets"}},
		{Source: "empty.yaml"},
	}

	set, err := Classify(docs)
	require.NoError(t, err)

	legacy := set.(*LegacyGeneration)
	assert.Equal(t, "api-docs.json", legacy.Source)
	require.Len(t, legacy.Declarations, 1)
	assert.Equal(t, "pets.json", legacy.Declarations[0].Source)
	assert.Equal(t, 0, legacy.Declarations[0].Index)
}

func TestClassify_AbsentFirstDocumentFails(t *testing.T) {
	for _, next := range []Document{
		{"swagger": "2.0"},
		{"swaggerVersion": "1.2"},
	} {
		docs := []Sourced{
			{Source: "first.json"},
			{Source: "second.json", Document: next},
		}

		set, err := Classify(docs)
		assert.Nil(t, set)
		assert.True(t, errors.Is(err, oaserrors.ErrClassify), "got %v", err)

		var cerr *oaserrors.ClassifyError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, "first.json", cerr.Source)
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	tests := []struct {
		name   string
		docs   []Sourced
		source string
	}{
		{
			name:   "no version field",
			docs:   []Sourced{{Source: "random.json", Document: Document{"name": "x"}}},
			source: "random.json",
		},
		{
			name:   "openapi 3 is not classified",
			docs:   []Sourced{{Source: "oas3.yaml", Document: Document{"openapi": "3.0.3"}}},
			source: "oas3.yaml",
		},
		{
			name:   "every document absent",
			docs:   []Sourced{{Source: "first.yaml"}, {Source: "second.yaml"}},
			source: "first.yaml",
		},
		{
			name: "no documents",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Classify(tt.docs)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.True(t, errors.Is(err, oaserrors.ErrClassify))

			var cerr *oaserrors.ClassifyError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.source, cerr.Source)
		})
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"2.0", "2.0"},
		{"1.2", "1.2"},
		{float64(2), "2.0"},
		{1.2, "1.2"},
		{nil, ""},
		{true, "true"},
		{map[string]any{"major": 2}, "map[major:2]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VersionString(tt.in), "VersionString(%v)", tt.in)
	}
}
