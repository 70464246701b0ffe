package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/renderers/tui"
	"github.com/goliatone/go-signupform/pkg/renderers/vanilla"
	"github.com/goliatone/go-signupform/pkg/uischema"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that runs after building but before
// decorators.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithUIDecorators registers decorators that run against the form model
// before rendering.
func WithUIDecorators(decorators ...Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithUISchema replaces the embedded UI schema document.
func WithUISchema(doc uischema.Document) Option {
	return func(o *Orchestrator) {
		o.uiSchema = &doc
	}
}

// WithoutUISchema disables the UI schema decorator; fields keep their paths
// as labels.
func WithoutUISchema() Option {
	return func(o *Orchestrator) {
		o.uiSchemaDisabled = true
	}
}

// Orchestrator coordinates building, decorating and rendering the form.
type Orchestrator struct {
	builder          model.Builder
	registry         *render.Registry
	defaultRenderer  string
	transformer      Transformer
	decorators       []Decorator
	uiSchema         *uischema.Document
	uiSchemaDisabled bool
	initialiseErr    error
}

// New constructs an Orchestrator. Missing dependencies are filled with the
// built-in implementations: the registration builder, the embedded UI schema
// and a registry holding the vanilla and tui renderers.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Snapshot carries the controller values and errors.
	Snapshot model.Snapshot

	// Renderer names the renderer to use. Empty falls back to the configured
	// default.
	Renderer string

	// RenderOptions carries hidden inputs, the output preview and the theme.
	RenderOptions render.RenderOptions
}

// Build returns the decorated form model for snapshot with its errors mapped
// onto fields.
func (o *Orchestrator) Build(ctx context.Context, snapshot model.Snapshot) (model.FormModel, error) {
	if ctx == nil {
		return model.FormModel{}, errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}

	form := o.builder.Build(snapshot)
	render.ApplyErrors(&form, render.MapErrorTree(form, snapshot.Errors))

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &form); err != nil {
			return model.FormModel{}, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}
	for _, decorator := range o.decorators {
		if decorator != nil {
			decorator.Decorate(&form)
		}
	}
	return form, nil
}

// Generate builds the form for req.Snapshot and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form, err := o.Build(ctx, req.Snapshot)
	if err != nil {
		return nil, err
	}

	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer resolves name against the registry, falling back to the default
// renderer when name is empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	renderer, err := o.registry.Get(target)
	if err == nil {
		return renderer, nil
	}
	if name != "" {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
	}
	renderer, err = o.registry.Get("")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: no renderers registered: %w", err)
	}
	return renderer, nil
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) applyDefaults() {
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(tui.NewRenderer())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	o.ensureUIDecorator()
}

func (o *Orchestrator) ensureUIDecorator() {
	if o.uiSchemaDisabled {
		return
	}
	doc := o.uiSchema
	if doc == nil {
		loaded, err := uischema.Default()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load ui schema: %w", err)
			return
		}
		doc = &loaded
	}
	// The UI schema runs first so caller decorators can override it.
	o.decorators = append([]Decorator{uischema.NewDecorator(*doc)}, o.decorators...)
}
