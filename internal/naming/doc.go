// Package naming provides identifier case conversion for gwlint.
//
// Identifiers are split into lowercase words and re-rendered in one of the
// supported styles (camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE,
// ALLCAPS). Conversion is idempotent: an identifier already rendered in a
// style converts to itself, which is what lets autofix converge after a
// single pass.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
