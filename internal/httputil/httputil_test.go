package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"default", true},
		{"x-custom", true},
		{"x-", true},
		{"100", true},
		{"200", true},
		{"404", true},
		{"599", true},

		// Range wildcards are not part of Swagger 2.0
		{"2XX", false},
		{"5XX", false},

		{"099", false},
		{"600", false},
		{"99", false},
		{"1000", false},
		{"", false},
		{"2 0", false},
		{"2a0", false},
		{"x", false},
		{"Default", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateStatusCode(tt.code), "ValidateStatusCode(%q)", tt.code)
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(100))
	assert.True(t, IsValidStatus(599))
	assert.False(t, IsValidStatus(99))
	assert.False(t, IsValidStatus(600))
	assert.False(t, IsValidStatus(0))
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess("200"))
	assert.True(t, IsSuccess("204"))
	assert.False(t, IsSuccess("default"))
	assert.False(t, IsSuccess("404"))
	assert.False(t, IsSuccess("2"))
}

func TestIsMethod(t *testing.T) {
	for _, m := range []string{"GET", "get", "Post", "PATCH", "options", "HEAD", "DELETE", "put"} {
		assert.True(t, IsMethod(m), m)
	}
	for _, m := range []string{"TRACE", "CONNECT", "fetch", ""} {
		assert.False(t, IsMethod(m), m)
	}
	assert.Len(t, Methods, 7)
}

func TestIsValidMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		expected  bool
	}{
		{"*/*", true},
		{"application/*", true},
		{"text/*", true},
		{"application/json", true},
		{"text/plain; charset=utf-8", true},
		{"multipart/form-data", true},
		{"application/vnd.api+json", true},
		{"APPLICATION/JSON", true},

		{"*/*/*", false},
		{"/*", false},
		{"application/", false},
		{"/json", false},
		{"application/json/extra", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidMediaType(tt.mediaType), "IsValidMediaType(%q)", tt.mediaType)
		})
	}
}
