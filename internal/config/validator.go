package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return "config: " + e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "config: %d validation errors:", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, err.Error())
	}
	return sb.String()
}

// Supported values.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"json", "console"}
	Renderers  = []string{"vanilla", "tui"}
)

// Validate checks every setting and returns nil when the config is usable.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, ValidationError{Field: "server.addr", Value: c.Server.Addr, Message: "must not be empty"})
	}
	if c.Server.Grace < 0 {
		errs = append(errs, ValidationError{Field: "server.grace", Value: c.Server.Grace, Message: "must not be negative"})
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		errs = append(errs, ValidationError{Field: "log.level", Value: c.Log.Level, Message: "must be one of " + strings.Join(LogLevels, ", ")})
	}
	if !slices.Contains(LogFormats, c.Log.Format) {
		errs = append(errs, ValidationError{Field: "log.format", Value: c.Log.Format, Message: "must be one of " + strings.Join(LogFormats, ", ")})
	}
	if !slices.Contains(Renderers, c.Render.Renderer) {
		errs = append(errs, ValidationError{Field: "render.renderer", Value: c.Render.Renderer, Message: "must be one of " + strings.Join(Renderers, ", ")})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
