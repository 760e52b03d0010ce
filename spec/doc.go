// Package spec provides per-version Swagger capabilities: documentation
// locations, validation, and Swagger 1.2 to 2.0 conversion.
//
// A [Capability] is looked up by version string through a [Provider]:
//
//	cap, err := spec.DefaultProvider.Get(set.Version())
//	if err != nil {
//	    return err // *oaserrors.UnsupportedVersionError
//	}
//	results, err := cap.Validate(ctx, set)
//
// # Validation
//
// Validation runs in two passes. Each document is first checked against the
// JSON Schema for its role (resource listing, API declaration, or Swagger 2.0
// object). Only when every document is structurally sound do the semantic
// checks run: duplicate paths and operation identifiers, path parameters,
// model and definition references, authorizations, response codes, and media
// types. Unused models and definitions are reported as warnings.
//
// # Conversion
//
// [Capability.Convert] on the 1.2 capability maps a resource listing and its
// API declarations to a single [Swagger20] document. By default the set is
// validated first and conversion refuses to run when errors are found; set
// [ConvertOptions.SkipValidation] to convert anyway.
package spec
