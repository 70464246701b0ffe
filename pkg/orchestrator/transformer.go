package orchestrator

import (
	"context"

	"github.com/goliatone/go-signupform/pkg/model"
)

// Transformer mutates a FormModel before decorators run.
type Transformer interface {
	Transform(ctx context.Context, form *model.FormModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.FormModel) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.FormModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// Decorator applies presentation texts to a built form model.
type Decorator interface {
	Decorate(form *model.FormModel)
}

// DecoratorFunc adapts plain functions to the Decorator interface.
type DecoratorFunc func(form *model.FormModel)

// Decorate executes the wrapped function when non-nil.
func (fn DecoratorFunc) Decorate(form *model.FormModel) {
	if fn != nil {
		fn(form)
	}
}
