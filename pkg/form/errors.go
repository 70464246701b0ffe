package form

import "errors"

var (
	// ErrUnknownPath is returned when a path does not address a field of the
	// current value tree.
	ErrUnknownPath = errors.New("form: unknown field path")
	// ErrIndexOutOfRange is returned when a tech row index does not exist.
	ErrIndexOutOfRange = errors.New("form: tech index out of range")
	// ErrMinimumRows is returned when removing the last visible tech row.
	ErrMinimumRows = errors.New("form: at least one tech row must remain")
)
