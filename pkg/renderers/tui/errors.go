package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrAttemptsExhausted is returned when required fields are still missing
	// after the configured number of submit attempts.
	ErrAttemptsExhausted = errors.New("tui: required fields still missing")
)
