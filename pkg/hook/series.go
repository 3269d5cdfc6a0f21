package hook

import (
	"fmt"
	"sync/atomic"

	"github.com/lerenn/tapline/pkg/logger"
)

// Series is the compiler for hooks whose taps all run, one after another,
// until the first failure. It carries no result between taps.
type Series struct {
	logger logger.Logger
}

// NewSeries creates a Series compiler. A nil logger discards messages.
func NewSeries(l logger.Logger) *Series {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &Series{logger: l}
}

// invocation is the per-call state threaded through a compiled chain.
type invocation struct {
	ctx  *Context
	args []any
}

// link runs one tap and hands control to next exactly once.
type link func(inv *invocation, next Callback)

// Compile implements Compiler.
func (s *Series) Compile(snapshot Snapshot, kind Kind) (*Unit, error) {
	if !kind.valid() {
		return nil, errUnknownKind(kind)
	}

	links := make([]link, 0, len(snapshot.Taps))
	for _, tap := range snapshot.Taps {
		if !tap.callableMatchesKind() {
			return nil, fmt.Errorf("%w: tap %q has kind %s and callable %T", ErrCompilation, tap.Name, tap.Kind, tap.Fn)
		}
		if kind == KindSync && tap.Kind != KindSync {
			return nil, fmt.Errorf("%w: tap %q is %s", ErrNonSyncTap, tap.Name, tap.Kind)
		}
		links = append(links, s.link(tap, snapshot.Interceptors))
	}

	chain := compose(links)
	interceptors := snapshot.Interceptors
	needsContext := snapshot.NeedsContext()

	return NewUnit(kind, func(args []any, done Callback) {
		inv := &invocation{args: args}
		if needsContext {
			inv.ctx = newContext()
		}
		invokeInterceptors(interceptors, inv.ctx, args)
		chain(inv, done)
	}), nil
}

// compose wires links back to front so that each one continues into the
// next, and any error skips straight to the final callback.
func compose(links []link) link {
	chain := func(_ *invocation, done Callback) { done(nil) }
	for i := len(links) - 1; i >= 0; i-- {
		current, rest := links[i], chain
		chain = func(inv *invocation, done Callback) {
			current(inv, func(err error) {
				if err != nil {
					done(err)
					return
				}
				rest(inv, done)
			})
		}
	}
	return chain
}

func (s *Series) link(tap *Tap, interceptors []Interceptor) link {
	switch fn := tap.Fn.(type) {
	case SyncFunc:
		return func(inv *invocation, next Callback) {
			tapInterceptors(interceptors, tap, inv.ctx, inv.args)
			if err := callSync(fn, withContext(tap.Context, inv.ctx, inv.args)); err != nil {
				next(executionError(tap, err))
				return
			}
			next(nil)
		}
	case AsyncFunc:
		return func(inv *invocation, next Callback) {
			tapInterceptors(interceptors, tap, inv.ctx, inv.args)
			s.callAsync(tap, fn, withContext(tap.Context, inv.ctx, inv.args), next)
		}
	case PromiseFunc:
		return func(inv *invocation, next Callback) {
			tapInterceptors(interceptors, tap, inv.ctx, inv.args)
			future, err := callPromise(fn, withContext(tap.Context, inv.ctx, inv.args))
			if err != nil {
				next(executionError(tap, err))
				return
			}
			future.Then(func(err error) {
				if err != nil {
					err = executionError(tap, err)
				}
				next(err)
			})
		}
	default:
		// Compile checked callableMatchesKind already.
		panic(fmt.Sprintf("hook: unexpected callable %T", tap.Fn))
	}
}

func callSync(fn SyncFunc, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return fn(args...)
}

func callPromise(fn PromiseFunc, args []any) (future *Future, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	future = fn(args...)
	if future == nil {
		return nil, ErrNilFuture
	}
	return future, nil
}

// callAsync runs an async tap. Only the first call of its continuation
// resumes the chain. A panic raised before the continuation is called fails
// the tap; a panic raised afterwards belongs to the rest of the chain and is
// not swallowed.
func (s *Series) callAsync(tap *Tap, fn AsyncFunc, args []any, next Callback) {
	var called atomic.Bool
	resume := func(err error) {
		if !called.CompareAndSwap(false, true) {
			s.logger.Logf("tap %q: continuation called more than once, ignoring", tap.Name)
			return
		}
		if err != nil {
			err = executionError(tap, err)
		}
		next(err)
	}

	defer func() {
		if r := recover(); r != nil {
			if called.Load() {
				panic(r)
			}
			resume(panicError(r))
		}
	}()
	fn(resume, args...)
}
