package hook

import (
	"errors"
	"fmt"
)

// Error definitions for hook package.
var (
	// ErrConfiguration is the root of every malformed registration or invocation error.
	ErrConfiguration = errors.New("invalid hook configuration")

	// Registration errors.
	ErrMissingName     = fmt.Errorf("%w: missing name for tap", ErrConfiguration)
	ErrInvalidOptions  = fmt.Errorf("%w: tap options must be a name or Options", ErrConfiguration)
	ErrInvalidCallable = fmt.Errorf("%w: tap callable does not match its kind", ErrConfiguration)

	// Invocation errors.
	ErrNonSyncTap = fmt.Errorf("%w: non-sync tap cannot be called synchronously", ErrConfiguration)
	ErrArity      = fmt.Errorf("%w: argument count does not match hook parameters", ErrConfiguration)

	// ErrExecution wraps every failure raised by a tap while the hook runs.
	ErrExecution = errors.New("execution failed")

	// ErrTapPanicked is the cause recorded when a tap panics.
	ErrTapPanicked = errors.New("tap panicked")

	// ErrNilFuture is the cause recorded when a promise tap returns no future.
	ErrNilFuture = errors.New("promise tap returned a nil future")

	// ErrCompilation signals a compiler invariant violation.
	ErrCompilation = errors.New("call chain compilation failed")
)

func executionError(tap *Tap, err error) error {
	return fmt.Errorf("%w: tap %q: %w", ErrExecution, tap.Name, err)
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("%w: %w", ErrTapPanicked, err)
	}
	return fmt.Errorf("%w: %v", ErrTapPanicked, v)
}

func fmtArity(want, got int) error {
	return fmt.Errorf("%w: want %d, got %d", ErrArity, want, got)
}

func errUnknownKind(kind Kind) error {
	return fmt.Errorf("%w: unknown execution kind %s", ErrCompilation, kind)
}
