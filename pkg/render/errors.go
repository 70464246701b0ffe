package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-signupform/pkg/model"
)

// ErrorMapping splits an error tree into field-level and form-level messages
// keyed by the dotted field paths used throughout the render pipeline.
type ErrorMapping struct {
	Fields map[string]string
	Form   []string
}

// ErrorMessage looks up the message recorded for path. It reports false when
// the field has no error, in which case nothing should be rendered.
func ErrorMessage(tree map[string]string, path string) (string, bool) {
	if len(tree) == 0 {
		return "", false
	}
	message := strings.TrimSpace(tree[strings.TrimSpace(path)])
	if message == "" {
		return "", false
	}
	return message, true
}

// MapErrorTree assigns every message of tree to a field path of form. Paths
// the form does not render are treated as form-level errors so messages are
// not lost.
func MapErrorTree(form model.FormModel, tree map[string]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string]string),
	}
	if len(tree) == 0 {
		mapping.Fields = nil
		return mapping
	}

	fieldPaths := make(map[string]struct{})
	for _, path := range form.FieldPaths() {
		fieldPaths[path] = struct{}{}
	}

	paths := make([]string, 0, len(tree))
	for path := range tree {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var formLevel []string
	for _, rawPath := range paths {
		message := strings.TrimSpace(tree[rawPath])
		if message == "" {
			continue
		}
		path := strings.TrimSpace(rawPath)
		if _, known := fieldPaths[path]; known && !isFormLevelKey(path) {
			mapping.Fields[path] = message
			continue
		}
		formLevel = append(formLevel, message)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(formLevel)
	return mapping
}

// ApplyErrors copies mapped messages onto the fields of form and replaces its
// form-level errors.
func ApplyErrors(form *model.FormModel, mapping ErrorMapping) {
	if form == nil {
		return
	}
	for i := range form.Fields {
		field := &form.Fields[i]
		field.Error = mapping.Fields[field.Name]
		for r := range field.Rows {
			for n := range field.Rows[r].Fields {
				nested := &field.Rows[r].Fields[n]
				nested.Error = mapping.Fields[nested.Name]
			}
		}
	}
	form.Errors = mapping.Form
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}
