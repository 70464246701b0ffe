// Package form implements the registration form controller.
//
// The Controller owns the uncommitted value tree, hands out bindings for
// dotted field paths, keeps the tech rows in a FieldArray (an arena keyed by a
// monotonically increasing ID), runs the schema on submit, and notifies
// per-path subscribers when the message at their path changes.
//
// A Controller is single-owner state: it is not safe for concurrent use and
// every operation completes synchronously. Surfaces that serve many users
// (the HTTP server) build one controller per event from the posted state.
package form
