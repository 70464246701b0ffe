// Package orchestrator wires the model builder, the UI schema decorator, the
// error mapping and a renderer into a single Generate call.
package orchestrator
