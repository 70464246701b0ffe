package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
)

// Renderer prints a form model as plain text for terminals and logs.
// Password values are masked.
type Renderer struct {
	theme Theme
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer constructs the text renderer.
func NewRenderer(theme ...Theme) *Renderer {
	r := &Renderer{theme: DefaultTheme()}
	if len(theme) > 0 {
		r.theme = theme[0]
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes one line per field followed by its error, if any.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	if form.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", form.Title)
	}
	for _, message := range form.Errors {
		fmt.Fprintf(&b, "%s%s\n", r.theme.ErrorPrefix, message)
	}
	for _, field := range form.Fields {
		if field.Type == model.FieldTypeArray {
			r.writeArray(&b, field)
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", fieldLabel(field), displayValue(field))
		r.writeError(&b, "  ", field.Error)
	}
	if opts.Output != "" {
		fmt.Fprintf(&b, "\n%s\n", opts.Output)
	}
	return []byte(b.String()), nil
}

func (r *Renderer) writeArray(b *strings.Builder, field model.Field) {
	fmt.Fprintf(b, "%s:\n", fieldLabel(field))
	for _, row := range field.Rows {
		parts := make([]string, 0, len(row.Fields))
		for _, nested := range row.Fields {
			parts = append(parts, fmt.Sprintf("%s=%s", fieldLabel(nested), displayValue(nested)))
		}
		fmt.Fprintf(b, "  %d. %s\n", row.Index+1, strings.Join(parts, ", "))
		for _, nested := range row.Fields {
			r.writeError(b, "     ", nested.Error)
		}
	}
	r.writeError(b, "  ", field.Error)
}

func (r *Renderer) writeError(b *strings.Builder, indent, message string) {
	if message == "" {
		return
	}
	fmt.Fprintf(b, "%s%s%s\n", indent, r.theme.ErrorPrefix, message)
}

func fieldLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayValue(field model.Field) string {
	if field.InputType == "password" && field.Value != "" {
		return strings.Repeat("*", len([]rune(field.Value)))
	}
	return field.Value
}
