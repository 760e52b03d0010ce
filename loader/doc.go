// Package loader acquires Swagger documents from local paths and http(s)
// URLs and classifies them into a role-labeled [DocumentSet].
//
// # Acquisition
//
// [Acquire] fetches every source concurrently, parses each one as YAML
// (".yaml"/".yml" extensions) or strict JSON (everything else), and keeps the
// caller's ordering regardless of completion order. Every fetch runs to
// completion; if any source fails, the failure of the earliest source is
// returned.
//
// # Classification
//
// The first document decides the generation:
//
//   - a "swagger" field yields a [CurrentGeneration] (Swagger 2.0)
//   - a "swaggerVersion" field yields a [LegacyGeneration] (Swagger 1.2)
//     whose remaining documents are its API declarations
//   - anything else fails with *oaserrors.ClassifyError
//
// Remote sources are requested with a "swagger-tools/<version>" User-Agent.
// The response body is parsed whatever the HTTP status code, and no timeout
// is applied unless [WithTimeout] or [WithHTTPClient] supplies one.
package loader
