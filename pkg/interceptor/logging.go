package interceptor

import (
	"github.com/lerenn/tapline/pkg/hook"
	"github.com/lerenn/tapline/pkg/logger"
)

// Logging logs registrations, invocations and tap runs of one hook.
type Logging struct {
	logger logger.Logger
	hook   string
}

// NewLogging creates a new Logging interceptor for the named hook.
func NewLogging(logger logger.Logger, hookName string) *Logging {
	return &Logging{
		logger: logger,
		hook:   hookName,
	}
}

// Interceptor returns the hook.Interceptor to pass to Hook.Intercept.
func (l *Logging) Interceptor() hook.Interceptor {
	return hook.Interceptor{
		Name:       "logging",
		OnRegister: l.OnRegister,
		OnInvoke:   l.OnInvoke,
		OnTap:      l.OnTap,
	}
}

// OnRegister logs the tap and keeps it unchanged.
func (l *Logging) OnRegister(tap *hook.Tap) *hook.Tap {
	l.logger.Logf("Registered tap on %s: %s", l.hook, tap)
	return nil
}

// OnInvoke logs the start of a call.
func (l *Logging) OnInvoke(args ...any) {
	l.logger.Logf("Calling %s with args: %v", l.hook, args)
}

// OnTap logs a tap about to run.
func (l *Logging) OnTap(tap *hook.Tap, _ ...any) {
	l.logger.Logf("Running tap on %s: %s", l.hook, tap.Name)
}
