package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	rendertemplate "github.com/goliatone/go-signupform/pkg/render/template"
	gotemplate "github.com/goliatone/go-signupform/pkg/render/template/gotemplate"
)

// Option configures the vanilla renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInlineStyles toggles embedding the stylesheet in the output. When
// disabled callers are expected to serve AssetsFS themselves.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// WithTheme sets the theme used when RenderOptions carries none.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		if cfg != nil {
			c.theme = cfg
		}
	}
}

// Renderer renders the form as server-side HTML.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	stylesheet   string
	defaultTheme *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		inlineStyles: true,
		theme:        DefaultTheme(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	r := &Renderer{
		templates:    templates,
		defaultTheme: cfg.theme,
	}
	if cfg.inlineStyles {
		r.stylesheet = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes templates/form.tmpl with the form, hidden inputs, theme and
// the output preview. The preview also travels in a hidden input so it
// survives the next round-trip.
func (r *Renderer) Render(_ context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	themeCfg := opts.Theme
	if themeCfg == nil {
		themeCfg = r.defaultTheme
	}

	hidden := render.MergeHiddenFields(opts.Hidden)
	if opts.Submitted {
		hidden = render.MergeHiddenFields(hidden, render.Hidden(render.SubmittedField, 1))
	}
	if opts.Output != "" {
		hidden = render.MergeHiddenFields(hidden, render.Hidden(render.OutputField, opts.Output))
	}

	result, err := r.templates.RenderTemplate("templates/form", map[string]any{
		"form":          form,
		"hidden_fields": render.SortedHiddenFields(hidden),
		"action_field":  render.ActionField,
		"output":        opts.Output,
		"stylesheet":    r.stylesheet,
		"theme":         buildThemeContext(themeCfg),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
