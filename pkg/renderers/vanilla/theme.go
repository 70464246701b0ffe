package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultTheme returns the dark zinc and indigo palette the form ships with.
func DefaultTheme() *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme:   "signupform",
		Variant: "dark",
		Tokens: map[string]string{
			"background": "#18181b",
			"surface":    "#fafafa",
			"accent":     "#4338ca",
			"error":      "#ef4444",
		},
		CSSVars: map[string]string{
			"--signup-background":   "#18181b",
			"--signup-surface":      "#fafafa",
			"--signup-input":        "#f4f4f5",
			"--signup-border":       "#d4d4d8",
			"--signup-accent":       "#4338ca",
			"--signup-accent-hover": "#3730a3",
			"--signup-link":         "#6366f1",
			"--signup-error":        "#ef4444",
			"--signup-output":       "#e4e4e7",
		},
	}
}

type themeContext struct {
	Name    string `json:"name,omitempty"`
	Variant string `json:"variant,omitempty"`
	Style   string `json:"style,omitempty"`
	Asset   string `json:"asset,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Style:   cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		ctx.Asset = cfg.AssetURL(StylesheetName)
	}
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if isCustomProperty(key) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(sanitizeCSSValue(vars[key]))
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func isCustomProperty(name string) bool {
	if !strings.HasPrefix(name, "--") || len(name) == 2 {
		return false
	}
	for _, r := range name[2:] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// sanitizeCSSValue keeps a custom property value from closing the rule or the
// surrounding style element.
func sanitizeCSSValue(value string) string {
	replacer := strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "")
	return strings.TrimSpace(replacer.Replace(value))
}
