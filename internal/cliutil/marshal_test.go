package cliutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalDocument(t *testing.T) {
	doc := map[string]any{
		"swagger": "2.0",
		"info":    map[string]any{"title": "Pets", "version": "1.0"},
	}

	t.Run("json", func(t *testing.T) {
		data, err := MarshalDocument(doc, FormatJSON)
		require.NoError(t, err)
		want := "{\n  \"info\": {\n    \"title\": \"Pets\",\n    \"version\": \"1.0\"\n  },\n  \"swagger\": \"2.0\"\n}\n"
		assert.Equal(t, want, string(data))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := MarshalDocument(doc, FormatYAML)
		require.NoError(t, err)
		out := string(data)
		assert.Contains(t, out, "info:\n  title: Pets\n")
		assert.Contains(t, out, "swagger: \"2.0\"\n")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := MarshalDocument(doc, "xml")
		assert.EqualError(t, err, "invalid output format: xml")
	})
}
