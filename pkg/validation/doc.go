// Package validation implements the registration schema: named rules composed
// into per-field pipelines, the error taxonomy, and the ErrorTree that maps
// dotted field paths to user-facing messages.
//
// A field pipeline runs its steps in order and stops at the first failing one,
// so every path carries at most one message. Transform steps feed their output
// to the steps after them; the schema returns the transformed tree only when
// every pipeline passed. Failures are values (Issues), never panics.
package validation
