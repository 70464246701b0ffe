package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when a session exhausts its submit
	// attempts without a valid form.
	ErrTooManyAttempts = errors.New("tui: too many attempts")
)
