package render

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-signupform/pkg/model"
)

// FormatOutput serializes validated values as 2-space indented JSON, the
// read-only preview shown after a successful submission. HTML characters are
// kept verbatim; templates escape them when rendering.
func FormatOutput(values model.FormValues) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if values.Techs == nil {
		values.Techs = []model.TechEntry{}
	}
	if err := enc.Encode(values); err != nil {
		return "", fmt.Errorf("render: format output: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
