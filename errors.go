package hq

import "errors"

var (
	// ErrBadInput indicates a malformed request body, such as an
	// enqueue payload that is not well-formed JSON.
	ErrBadInput = errors.New("hq: bad input")

	// ErrValidation indicates a queue field failed validation, such as
	// max_attempts or visibility_timeout_seconds below 1.
	ErrValidation = errors.New("hq: validation failed")

	// ErrConflict indicates a unique-constraint violation, such as
	// creating a queue whose name already exists.
	ErrConflict = errors.New("hq: conflict")
)

// ErrDoubleStarted is returned when Start is called on a component that
// has already been started.
var ErrDoubleStarted = errors.New("hq: double start")

// ErrDoubleStopped is returned when Stop is called on a component that
// is not currently running.
var ErrDoubleStopped = errors.New("hq: double stop")

// ErrStopTimeout is returned when a component fails to shut down within
// the provided timeout during Stop. The component may still be
// terminating in the background.
var ErrStopTimeout = errors.New("hq: stop timeout")
