// Package base provides common functionality for tapline components.
package base

import (
	"fmt"

	"github.com/lerenn/tapline/pkg/logger"
)

// Base provides common functionality for tapline components.
type Base struct {
	Logger  logger.Logger
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	Logger  logger.Logger
	Verbose bool
}

// NewBase creates a new Base instance.
func NewBase(params NewBaseParams) *Base {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &Base{
		Logger:  l,
		verbose: params.Verbose,
	}
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf("%s", fmt.Sprintf(msg, args...))
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (b *Base) IsVerbose() bool {
	return b.verbose
}
