package spec

// Swagger20 is a Swagger 2.0 document produced by conversion. Fields are
// declared in the order they are rendered.
type Swagger20 struct {
	Swagger             string                     `json:"swagger" yaml:"swagger"`
	Info                *Info                      `json:"info" yaml:"info"`
	Host                string                     `json:"host,omitempty" yaml:"host,omitempty"`
	BasePath            string                     `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Schemes             []string                   `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Consumes            []string                   `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces            []string                   `json:"produces,omitempty" yaml:"produces,omitempty"`
	Tags                []Tag                      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths               map[string]PathItem        `json:"paths" yaml:"paths"`
	Definitions         map[string]Schema          `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	SecurityDefinitions map[string]*SecurityScheme `json:"securityDefinitions,omitempty" yaml:"securityDefinitions,omitempty"`
}

// Info is the document's metadata.
type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Version        string   `json:"version" yaml:"version"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License `json:"license,omitempty" yaml:"license,omitempty"`
}

// Contact is the API contact information.
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License is the API license information.
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Tag groups operations; one is created per resource.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem maps lower-case HTTP methods to operations.
type PathItem map[string]*Operation

// Operation is a single API operation.
type Operation struct {
	Tags        []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string                `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Consumes    []string              `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces    []string              `json:"produces,omitempty" yaml:"produces,omitempty"`
	Parameters  []*Parameter          `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]*Response  `json:"responses" yaml:"responses"`
	Deprecated  bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Security    []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`
}

// Parameter is an operation parameter. Body parameters carry a Schema;
// all others carry the inline type fields.
type Parameter struct {
	Name             string   `json:"name" yaml:"name"`
	In               string   `json:"in" yaml:"in"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required         bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Schema           Schema   `json:"schema,omitempty" yaml:"schema,omitempty"`
	Type             string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format           string   `json:"format,omitempty" yaml:"format,omitempty"`
	Items            Schema   `json:"items,omitempty" yaml:"items,omitempty"`
	CollectionFormat string   `json:"collectionFormat,omitempty" yaml:"collectionFormat,omitempty"`
	Default          any      `json:"default,omitempty" yaml:"default,omitempty"`
	Enum             []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	UniqueItems      bool     `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
}

// Response describes one operation response.
type Response struct {
	Description string `json:"description" yaml:"description"`
	Schema      Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// SecurityScheme is a security definition.
type SecurityScheme struct {
	Type             string            `json:"type" yaml:"type"`
	Description      string            `json:"description,omitempty" yaml:"description,omitempty"`
	Name             string            `json:"name,omitempty" yaml:"name,omitempty"`
	In               string            `json:"in,omitempty" yaml:"in,omitempty"`
	Flow             string            `json:"flow,omitempty" yaml:"flow,omitempty"`
	AuthorizationURL string            `json:"authorizationUrl,omitempty" yaml:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty" yaml:"tokenUrl,omitempty"`
	Scopes           map[string]string `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// Schema is a JSON Schema fragment as used by Swagger 2.0 definitions,
// body parameters, and responses.
type Schema map[string]any
