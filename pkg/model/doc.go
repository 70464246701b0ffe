// Package model defines the value tree of the registration form and the
// render-facing form model built from it.
//
// RawValues is the uncommitted text the user typed: every leaf is a string,
// including tech experience, and every tech row carries the synthetic ID the
// field array assigned to it. FormValues is the validated and transformed
// tree produced by the schema (name re-cased, email lower-cased, experience as
// a number). FormModel is what renderers consume: fields addressed by dotted
// paths, with their current value and error message already resolved so
// templates stay free of lookups.
package model
