// Package swaggertools provides tools for working with Swagger API descriptions
// across two schema generations: Swagger 1.2 (a resource listing plus API
// declarations) and Swagger 2.0 (one self-contained document).
//
// # Overview
//
// The module is organized into a small set of packages:
//
//   - loader: fetch local or remote documents, parse them as JSON or YAML,
//     and classify the batch into a [loader.DocumentSet]
//   - spec: version-keyed capabilities that validate documents and convert
//     Swagger 1.2 document sets to Swagger 2.0
//   - oaserrors: structured error types usable with errors.Is and errors.As
//
// The swagger-tools command (cmd/swagger-tools) wires these together behind
// the convert, validate, info and help subcommands, and swagger-tools-mcp
// exposes the same operations as MCP tools.
//
// # Quick Start
//
// Validate a Swagger 2.0 document:
//
//	set, err := loader.Acquire(ctx, []string{"swagger.yaml"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	capability, err := spec.DefaultProvider.Get(set.Version())
//	if err != nil {
//		log.Fatal(err)
//	}
//	results, err := capability.Validate(ctx, set)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d errors, %d warnings\n", results.ErrorCount(), results.WarningCount())
//
// Convert a Swagger 1.2 document set:
//
//	set, err := loader.Acquire(ctx, []string{"api-docs.json", "pets.json", "stores.json"})
//	legacy, ok := set.(*loader.LegacyGeneration)
//	capability, _ := spec.DefaultProvider.Get("1.2")
//	converted, err := capability.Convert(ctx, legacy, spec.ConvertOptions{})
package swaggertools
