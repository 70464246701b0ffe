package validation

// Step is one named stage of a field pipeline. Run returns the (possibly
// transformed) value and whether the step passed. A failing step reports Kind
// and Message.
type Step[T any] struct {
	Name    string
	Kind    Kind
	Message string
	Run     func(T) (T, bool)
}

// Check builds a step that validates without changing the value.
func Check[T any](name string, kind Kind, message string, ok func(T) bool) Step[T] {
	return Step[T]{
		Name:    name,
		Kind:    kind,
		Message: message,
		Run: func(value T) (T, bool) {
			return value, ok(value)
		},
	}
}

// Transform builds a step that always passes and rewrites the value.
func Transform[T any](name string, fn func(T) T) Step[T] {
	return Step[T]{
		Name: name,
		Run: func(value T) (T, bool) {
			return fn(value), true
		},
	}
}

// Pipeline runs steps in order, threading transformed values, and stops at
// the first failing step.
type Pipeline[T any] []Step[T]

// Run applies the pipeline to value. On failure the returned issue carries
// path and the failing step's details.
func (p Pipeline[T]) Run(path string, value T) (T, *Issue) {
	current := value
	for _, step := range p {
		if step.Run == nil {
			continue
		}
		next, ok := step.Run(current)
		if !ok {
			return current, &Issue{
				Path:    path,
				Kind:    step.Kind,
				Message: step.Message,
				Rule:    step.Name,
			}
		}
		current = next
	}
	return current, nil
}

// Names lists the step names in execution order.
func (p Pipeline[T]) Names() []string {
	out := make([]string, 0, len(p))
	for _, step := range p {
		out = append(out, step.Name)
	}
	return out
}
