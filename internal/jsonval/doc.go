// Package jsonval models arbitrary JSON documents as a closed sum type.
//
// Value is a sealed interface with exactly six implementations:
//   - Null: the JSON null
//   - Bool: true / false
//   - Number: any JSON number, kept as its source literal
//   - String: a JSON string
//   - Array: an ordered sequence of Values
//   - Object: a mapping of string keys to Values
//
// Numbers are never coerced to float64 during decoding. The literal text is
// preserved (via json.Number), so integers larger than 2^53 and decimal
// fractions round-trip exactly.
//
// Marshal produces the canonical text form used for storage: compact (no
// insignificant whitespace), object keys sorted bytewise ascending, and no
// HTML escaping. For a given Value the output is byte-stable across runs.
package jsonval
