package spec

import (
	"context"
	"slices"

	"github.com/erraggy/swaggertools/loader"
	"github.com/erraggy/swaggertools/oaserrors"
)

// Supported Swagger versions
const (
	Version12 = "1.2"
	Version20 = "2.0"
)

// ConvertOptions configures a conversion.
type ConvertOptions struct {
	// SkipValidation converts without validating the source documents first
	SkipValidation bool
}

// Capability is the set of operations available for one Swagger version.
type Capability interface {
	// Version returns the Swagger version this capability handles.
	Version() string
	// DocsURL returns the location of the version's specification text.
	DocsURL() string
	// SchemasURL returns the location of the version's JSON Schemas.
	SchemasURL() string
	// Validate checks a document set of this version. A nil error with
	// issues in the Results means validation ran and found problems.
	Validate(ctx context.Context, set loader.DocumentSet) (*Results, error)
	// Convert produces a Swagger 2.0 document from a Swagger 1.2 set. Unless
	// opts.SkipValidation is set, a set with validation errors fails with
	// *ValidationFailedError.
	Convert(ctx context.Context, set *loader.LegacyGeneration, opts ConvertOptions) (*Swagger20, error)
}

// Provider looks up the capability for a version string.
type Provider interface {
	Get(version string) (Capability, error)
}

// Registry is a Provider backed by a fixed set of capabilities.
type Registry struct {
	caps map[string]Capability
}

// NewRegistry creates a registry holding caps, keyed by their Version.
func NewRegistry(caps ...Capability) *Registry {
	r := &Registry{caps: make(map[string]Capability, len(caps))}
	for _, c := range caps {
		r.caps[c.Version()] = c
	}
	return r
}

// Get returns the capability for version, or *oaserrors.UnsupportedVersionError.
func (r *Registry) Get(version string) (Capability, error) {
	if c, ok := r.caps[version]; ok {
		return c, nil
	}
	return nil, &oaserrors.UnsupportedVersionError{Version: version, Supported: r.Versions()}
}

// Versions returns the registered versions in ascending order.
func (r *Registry) Versions() []string {
	versions := make([]string, 0, len(r.caps))
	for v := range r.caps {
		versions = append(versions, v)
	}
	slices.Sort(versions)
	return versions
}

// DefaultProvider serves the built-in Swagger 1.2 and 2.0 capabilities.
var DefaultProvider = NewRegistry(V12(), V20())

var _ Provider = (*Registry)(nil)
