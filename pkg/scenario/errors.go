package scenario

import "errors"

// Error definitions for scenario package.
var (
	// ErrStepFailed is reported by taps of steps marked to fail.
	ErrStepFailed = errors.New("step configured to fail")
	// ErrCallTimeout is returned when an async or promise call never completes.
	ErrCallTimeout = errors.New("hook call did not complete")
)
