// Package httputil provides HTTP-related validation utilities and constants
// shared by the Swagger 1.2 and 2.0 checks.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
)

// HTTP method names as they appear as Swagger 2.0 path item keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// Methods lists the operation methods both Swagger generations allow, in the
// order path items are rendered.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch,
}

// IsMethod reports whether method (any case) names a Swagger operation method.
func IsMethod(method string) bool {
	m := strings.ToLower(method)
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// ValidateStatusCode checks a Swagger 2.0 responses key.
// Valid values are:
//   - "default" for the default response
//   - Extension fields starting with "x-"
//   - Numeric codes: 100-599
//
// Range wildcards such as "2XX" are an OpenAPI 3 addition and are rejected.
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if strings.HasPrefix(code, "x-") {
		return true
	}
	if len(code) != StatusCodeLength {
		return false
	}
	for i := range StatusCodeLength {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	statusCode, err := strconv.Atoi(code)
	return err == nil && IsValidStatus(statusCode)
}

// IsValidStatus reports whether a numeric status code is in the 100-599 range.
func IsValidStatus(code int) bool {
	return code >= MinStatusCode && code <= MaxStatusCode
}

// IsSuccess reports whether a status code is in the 2xx class.
func IsSuccess(code string) bool {
	return len(code) == StatusCodeLength && code[0] == '2'
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and prevents invalid combinations (*/subtype).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if strings.HasSuffix(mediaType, "/*") {
		parts := strings.Split(mediaType, "/")
		return len(parts) == 2 && parts[0] != "" && parts[0] != "*"
	}

	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
