package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	doc := map[string]any{
		"name":    "pets",
		"count":   float64(3),
		"info":    map[string]any{"title": "T"},
		"tags":    []any{"a", float64(1), "b"},
		"apis":    []any{map[string]any{"path": "/a"}, "junk"},
		"flag":    true,
		"strbool": "true",
		"min":     "1.5",
	}

	assert.Equal(t, "pets", String(doc, "name"))
	assert.Empty(t, String(doc, "count"))
	assert.Equal(t, "T", Map(doc, "info")["title"])
	assert.Nil(t, Map(doc, "name"))
	assert.Len(t, Slice(doc, "tags"), 3)
	assert.Nil(t, Slice(doc, "missing"))
	assert.Equal(t, []string{"a", "b"}, Strings(doc, "tags"))

	apis := Maps(doc, "apis")
	if assert.Len(t, apis, 2) {
		assert.Equal(t, "/a", apis[0]["path"])
		assert.Nil(t, apis[1])
	}

	assert.True(t, Bool(doc, "flag"))
	assert.True(t, Bool(doc, "strbool"))
	assert.False(t, Bool(doc, "name"))

	n, ok := Number(doc, "min")
	assert.True(t, ok)
	assert.Equal(t, 1.5, n)
	n, ok = Number(doc, "count")
	assert.True(t, ok)
	assert.Equal(t, float64(3), n)
	_, ok = Number(doc, "name")
	assert.False(t, ok)
}

func TestScalar(t *testing.T) {
	assert.Equal(t, "abc", Scalar("abc"))
	assert.Equal(t, "404", Scalar(float64(404)))
	assert.Equal(t, "1.5", Scalar(1.5))
	assert.Equal(t, "false", Scalar(false))
	assert.Empty(t, Scalar(nil))
}
