// Package oaserrors provides structured error types for swagger-tools.
//
// Import path: github.com/erraggy/swaggertools/oaserrors
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrFetch]: Matches any [FetchError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrClassify]: Matches any [ClassifyError]
//   - [ErrUnsupportedVersion]: Matches any [UnsupportedVersionError]
//   - [ErrValidation]: Matched by spec.ValidationFailedError
//   - [ErrConversion]: Matches any [ConversionError]
//   - [ErrUnknownCommand]: Matches any [UnknownCommandError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// Acquisition errors (fetch, parse, classify) and version resolution errors
// abort a command. Validation failures are reported, not crashed on.
package oaserrors
