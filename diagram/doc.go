// Package diagram defines the sketch document model and its schema
// validator. A document carries a prefix map, a domain label, a map of
// polymorphic elements (rectangles, diamonds, arrows, text, trees) and a
// block of raw statement text. The validator checks a raw JSON-shaped
// value against the structural rules and reports the first violation in
// a fixed precedence order, so error messages are deterministic.
//
// The package never mutates its input; every operation is a pure
// computation over in-memory values, safe for concurrent callers.
package diagram
