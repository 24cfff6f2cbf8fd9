// Package utils holds the small coercion, rounding and formatting helpers
// shared by the exporter, the HTTP features and the CLI.
//
// The To* coercions accept loosely typed input such as query parameters,
// spreadsheet cells or scanned SQL values. The lenient ones (ToInt, ToString)
// never fail; the strict ones return an error for types they cannot convert
// and fall back to a caller-supplied default for blank input.
package utils
