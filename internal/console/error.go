package console

import "errors"

var (
	// ErrExit ends the loop after the user picks the exit choice.
	ErrExit  = errors.New("exit requested")
	ErrPanic = errors.New("panic in console turn")
)
