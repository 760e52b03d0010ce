// Package pathutil provides helpers for Swagger path templates, local
// references, and output file paths.
//
// # Path Templates
//
// [TemplateParams] lists the parameter names of a path template in order:
//
//	pathutil.TemplateParams("/pets/{petId}/owners/{ownerId}") // ["petId", "ownerId"]
//
// # Reference Builders
//
// Swagger 2.0 local references are built and taken apart with the
// [DefinitionRef] family and [LocalRefTarget]:
//
//	ref := pathutil.DefinitionRef("Pet")            // "#/definitions/Pet"
//	section, name, ok := pathutil.LocalRefTarget(ref) // "definitions", "Pet", true
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths. It resolves
// ".." components and rejects symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
