package hook

import (
	"fmt"
	"slices"
)

// Callback resumes an asynchronous chain. A nil error moves on to the next tap.
type Callback func(err error)

// SyncFunc is the callable of a sync tap.
type SyncFunc func(args ...any) error

// AsyncFunc is the callable of an async tap. It must call done exactly once.
type AsyncFunc func(done Callback, args ...any)

// PromiseFunc is the callable of a promise tap.
type PromiseFunc func(args ...any) *Future

// Options describes how a tap is registered.
type Options struct {
	// Name identifies the tap and is the target of other taps' Before lists.
	Name string
	// Kind defaults to KindSync.
	Kind Kind
	// Stage orders otherwise unconstrained taps, lower first.
	Stage int
	// Before lists taps this one must run ahead of.
	Before []string
	// Context requests the per-invocation *Context as first argument.
	Context bool
}

// Tap is one registered handler plus its ordering and execution metadata.
type Tap struct {
	Name    string
	Kind    Kind
	Stage   int
	Before  []string
	Context bool

	// Fn holds a SyncFunc, AsyncFunc or PromiseFunc matching Kind.
	Fn any
}

func (t *Tap) clone() *Tap {
	c := *t
	c.Before = slices.Clone(t.Before)
	return &c
}

// String returns a short description of the tap.
func (t *Tap) String() string {
	return fmt.Sprintf("%s(%s, stage %d)", t.Name, t.Kind, t.Stage)
}

// newTap normalizes the options accepted by Register into a Tap.
func newTap(options any, fn any) (*Tap, error) {
	var opts Options
	switch o := options.(type) {
	case string:
		opts = Options{Name: o}
	case Options:
		opts = o
	case *Options:
		if o == nil {
			return nil, ErrInvalidOptions
		}
		opts = *o
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidOptions, options)
	}

	if opts.Name == "" {
		return nil, ErrMissingName
	}
	if !opts.Kind.valid() {
		return nil, fmt.Errorf("%w: tap %q has unknown kind %s", ErrInvalidOptions, opts.Name, opts.Kind)
	}

	tap := &Tap{
		Name:    opts.Name,
		Kind:    opts.Kind,
		Stage:   opts.Stage,
		Before:  slices.Clone(opts.Before),
		Context: opts.Context,
		Fn:      normalizeFn(fn),
	}
	if !tap.callableMatchesKind() {
		return nil, fmt.Errorf("%w: tap %q is %s but got %T", ErrInvalidCallable, tap.Name, tap.Kind, fn)
	}

	return tap, nil
}

// normalizeFn converts plain function literals into the named callable types.
func normalizeFn(fn any) any {
	switch f := fn.(type) {
	case func(args ...any) error:
		return SyncFunc(f)
	case func(done Callback, args ...any):
		return AsyncFunc(f)
	case func(done func(error), args ...any):
		return AsyncFunc(func(done Callback, args ...any) { f(done, args...) })
	case func(args ...any) *Future:
		return PromiseFunc(f)
	default:
		return fn
	}
}

func (t *Tap) callableMatchesKind() bool {
	switch t.Kind {
	case KindSync:
		f, ok := t.Fn.(SyncFunc)
		return ok && f != nil
	case KindAsync:
		f, ok := t.Fn.(AsyncFunc)
		return ok && f != nil
	case KindPromise:
		f, ok := t.Fn.(PromiseFunc)
		return ok && f != nil
	default:
		return false
	}
}
