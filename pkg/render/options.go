package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model.
type RenderOptions struct {
	// Hidden carries hidden inputs emitted alongside the visible fields, such
	// as tech row identities and the field array counter.
	Hidden map[string]string
	// Output is the pretty JSON of the last successful submission. Renderers
	// show it read-only when present.
	Output string
	// Submitted records that the form went through at least one submit so
	// follow-up actions can keep re-validating.
	Submitted bool
	// Theme supplies design tokens and CSS variables resolved for the
	// request. Nil means the renderer's defaults.
	Theme *theme.RendererConfig
}
