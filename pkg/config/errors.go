package config

import "errors"

// Error definitions for config package.
var (
	// Scenario file errors.
	ErrScenarioNotFound = errors.New("scenario file not found")
	ErrScenarioParse    = errors.New("failed to parse scenario file")
	// Scenario validation errors.
	ErrArgsMismatch       = errors.New("args must match params")
	ErrUnknownMode        = errors.New("unknown call mode")
	ErrUnknownKind        = errors.New("unknown tap kind")
	ErrUnknownInterceptor = errors.New("unknown interceptor")
)
