package form

// Binding ties an input to one dotted path of a controller's value tree.
// Paths are positional: a binding to techs.2.title follows whatever row sits
// at index 2.
type Binding struct {
	Path       string
	controller *Controller
}

// Value returns the current text at the bound path.
func (b Binding) Value() string {
	if b.controller == nil {
		return ""
	}
	value, err := b.controller.Value(b.Path)
	if err != nil {
		return ""
	}
	return value
}

// Set writes text at the bound path. It fails with ErrUnknownPath once the
// path no longer exists, e.g. after its row was removed.
func (b Binding) Set(value string) error {
	if b.controller == nil {
		return ErrUnknownPath
	}
	return b.controller.SetValue(b.Path, value)
}

// Error returns the message currently recorded for the bound path.
func (b Binding) Error() (string, bool) {
	if b.controller == nil {
		return "", false
	}
	return b.controller.Error(b.Path)
}
