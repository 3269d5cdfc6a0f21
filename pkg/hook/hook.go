// Package hook provides named extension points that run ordered handlers
// ("taps") synchronously, with continuations, or with futures.
//
// A Hook is created with the names of the parameters every call passes to
// its taps:
//
//	h := hook.New("compilation")
//	_ = h.Tap("A", func(args ...any) error { return nil })
//	_ = h.TapOptions(hook.Options{Name: "B", Before: []string{"A"}}, fn)
//	err := h.CallSync(compilation)
//
// Taps are ordered by their Before constraints first and by Stage second.
// Interceptors can rewrite taps at registration and observe every call.
package hook

import (
	"slices"
	"sync"

	"github.com/lerenn/tapline/pkg/logger"
)

// Hook is a named extension point holding ordered taps and interceptors.
//
// Registration and invocation are guarded by a mutex, but a call that is
// suspended on an async or promise tap keeps running the taps it was
// compiled with. Callers that register while calls are in flight must
// serialize that themselves.
type Hook struct {
	mu sync.Mutex

	params       []string
	registry     registry
	interceptors interceptorChain

	compiler Compiler
	logger   logger.Logger

	// units holds one compiled call chain per kind. nil means not compiled
	// since the last mutation.
	units [kindCount]*Unit
}

// Option configures a Hook.
type Option func(*Hook)

// WithLogger sets the logger used for registration warnings.
func WithLogger(l logger.Logger) Option {
	return func(h *Hook) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithCompiler replaces the Series compiler.
func WithCompiler(c Compiler) Option {
	return func(h *Hook) {
		if c != nil {
			h.compiler = c
		}
	}
}

// New creates a hook whose calls take one argument per parameter name.
func New(params ...string) *Hook {
	return NewWithOptions(params)
}

// NewWithOptions creates a hook with the given parameters and options.
func NewWithOptions(params []string, opts ...Option) *Hook {
	h := &Hook{
		params: slices.Clone(params),
		logger: logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.compiler == nil {
		h.compiler = NewSeries(h.logger)
	}
	h.registry.logger = h.logger
	return h
}

// Params returns the parameter names declared at creation.
func (h *Hook) Params() []string {
	return slices.Clone(h.params)
}

// Taps returns copies of the registered taps in execution order.
func (h *Hook) Taps() []*Tap {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.snapshot()
}

// IsUsed reports whether any tap or interceptor was registered.
func (h *Hook) IsUsed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.registry.taps) > 0 || len(h.interceptors.interceptors) > 0
}

// resetCompilation drops every compiled unit. Callers hold h.mu.
func (h *Hook) resetCompilation() {
	for i := range h.units {
		h.units[i] = nil
	}
}

// unit returns the compiled chain for kind, compiling it when needed.
func (h *Hook) unit(kind Kind, args []any) (*Unit, error) {
	if len(args) != len(h.params) {
		return nil, fmtArity(len(h.params), len(args))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !kind.valid() {
		return nil, errUnknownKind(kind)
	}
	if u := h.units[kind]; u != nil {
		return u, nil
	}

	u, err := h.compiler.Compile(Snapshot{
		Params:       slices.Clone(h.params),
		Taps:         h.registry.snapshot(),
		Interceptors: h.interceptors.snapshot(),
	}, kind)
	if err != nil {
		return nil, err
	}
	h.units[kind] = u
	return u, nil
}
