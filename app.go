package signupform

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/form"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/renderers/tui"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// RenderOptions aliases render.RenderOptions for callers of the root package.
type RenderOptions = render.RenderOptions

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger shared by the app and its controller.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithValidator replaces the registration schema.
func WithValidator(v validation.Validator) Option {
	return func(a *App) {
		if v != nil {
			a.validator = v
		}
	}
}

// WithOrchestrator shares a pre-built orchestrator. Orchestrators are safe to
// share between apps.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(a *App) {
		if o != nil {
			a.orchestrator = o
		}
	}
}

// WithTheme sets the theme passed to renderers.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(a *App) {
		a.theme = cfg
	}
}

// WithInitialValues seeds the controller.
func WithInitialValues(values model.RawValues) Option {
	return func(a *App) {
		a.initial = &values
	}
}

// App is one live registration form.
type App struct {
	logger       *zap.Logger
	validator    validation.Validator
	orchestrator *orchestrator.Orchestrator
	theme        *theme.RendererConfig
	initial      *model.RawValues

	controller *form.Controller
	output     string
	submitted  bool
}

// New wires the schema, controller and orchestrator.
func New(options ...Option) (*App, error) {
	a := &App{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	if a.validator == nil {
		a.validator = validation.NewSchema()
	}
	if a.orchestrator == nil {
		a.orchestrator = orchestrator.New()
	}
	if _, err := a.orchestrator.Build(context.Background(), model.Snapshot{}); err != nil {
		return nil, fmt.Errorf("signupform: %w", err)
	}

	controllerOpts := []form.Option{form.WithLogger(a.logger)}
	if a.initial != nil {
		controllerOpts = append(controllerOpts, form.WithInitialValues(*a.initial))
	}
	a.controller = form.New(a.validator, controllerOpts...)
	return a, nil
}

// Controller exposes the form controller.
func (a *App) Controller() *form.Controller {
	return a.controller
}

// Submit validates the form. On success the pretty JSON of the validated
// values becomes the output and is logged.
func (a *App) Submit() bool {
	a.submitted = true
	return a.controller.Submit(a.accept)
}

// accept records values of a successful submission as the output.
func (a *App) accept(values model.FormValues) {
	output, err := render.FormatOutput(values)
	if err != nil {
		a.logger.Error("format submitted values", zap.Error(err))
		return
	}
	a.output = output
	a.logger.Info("form submitted", zap.String("output", output))
}

// Output returns the pretty JSON of the last successful submission, or an
// empty string before the first one.
func (a *App) Output() string {
	return a.output
}

// Submitted reports whether the form went through at least one submit.
func (a *App) Submitted() bool {
	return a.submitted
}

// Restore rebuilds the form state from posted values, including row
// identities, the submitted flag and the last successful output.
func (a *App) Restore(values url.Values) {
	a.controller.Decode(values)
	a.submitted = values.Get(render.SubmittedField) != ""
	a.output = values.Get(render.OutputField)
}

// Dispatch performs a posted action: "submit", "add" or "remove:<index>".
// After the first submit, add and remove re-validate so inline errors follow
// the rows. An empty action is treated as submit.
func (a *App) Dispatch(action string) error {
	action = strings.TrimSpace(action)
	switch {
	case action == "" || action == render.ActionSubmit:
		a.Submit()
		return nil
	case action == render.ActionAdd:
		a.controller.AppendTech()
	default:
		index, ok := render.ParseRemoveAction(action)
		if !ok {
			return fmt.Errorf("signupform: unknown action %q", action)
		}
		if err := a.controller.RemoveTech(index); err != nil {
			return fmt.Errorf("signupform: %w", err)
		}
	}
	if a.submitted {
		a.controller.Trigger()
	}
	return nil
}

// Form returns the decorated form model for the current state.
func (a *App) Form(ctx context.Context) (model.FormModel, error) {
	return a.orchestrator.Build(ctx, a.controller.Snapshot())
}

// Render renders the current state with the named renderer; an empty name
// selects the default one.
func (a *App) Render(ctx context.Context, rendererName string) ([]byte, error) {
	return a.orchestrator.Generate(ctx, orchestrator.Request{
		Snapshot:      a.controller.Snapshot(),
		Renderer:      rendererName,
		RenderOptions: a.RenderOptions(),
	})
}

// RenderOptions returns the per-render options for the current state.
func (a *App) RenderOptions() RenderOptions {
	return RenderOptions{
		Hidden:    a.controller.HiddenState(),
		Output:    a.output,
		Submitted: a.submitted,
		Theme:     a.theme,
	}
}

// ContentType reports the content type of the named renderer.
func (a *App) ContentType(rendererName string) (string, error) {
	renderer, err := a.orchestrator.Renderer(rendererName)
	if err != nil {
		return "", err
	}
	return renderer.ContentType(), nil
}

// Session returns a terminal session bound to the app's controller, labelled
// with the decorated form texts. A successful session submit updates Output
// and is logged like Submit.
func (a *App) Session(ctx context.Context, options ...tui.Option) (*tui.Session, error) {
	built, err := a.Form(ctx)
	if err != nil {
		return nil, err
	}
	opts := append([]tui.Option{
		tui.WithLabels(tui.LabelsFromForm(built)),
		tui.WithLogger(a.logger),
		tui.WithOnSuccess(func(values model.FormValues) {
			a.submitted = true
			a.accept(values)
		}),
	}, options...)
	return tui.NewSession(a.controller, opts...)
}
