package hook

import "slices"

// Interceptor observes a hook. Every field is optional.
type Interceptor struct {
	// Name is only used in logs.
	Name string

	// OnRegister may transform a tap when it is registered. It also runs over
	// the taps already registered when the interceptor is added. Returning nil
	// keeps the tap it was given.
	OnRegister func(tap *Tap) *Tap

	// OnInvoke runs once per invocation, before any tap.
	OnInvoke func(args ...any)

	// OnTap runs immediately before each tap.
	OnTap func(tap *Tap, args ...any)

	// UsesContext prepends the invocation *Context to the args given to
	// OnInvoke and OnTap.
	UsesContext bool
}

// interceptorChain owns the ordered interceptors of one hook.
type interceptorChain struct {
	interceptors []Interceptor
}

// add appends interceptor and replays its OnRegister over taps, in order.
func (c *interceptorChain) add(interceptor Interceptor, taps []*Tap) {
	c.interceptors = append(c.interceptors, interceptor)
	if interceptor.OnRegister == nil {
		return
	}
	for i, tap := range taps {
		if replaced := interceptor.OnRegister(tap); replaced != nil {
			taps[i] = replaced
		}
	}
}

// applyRegister folds every OnRegister over tap and returns the result.
func (c *interceptorChain) applyRegister(tap *Tap) *Tap {
	for _, interceptor := range c.interceptors {
		if interceptor.OnRegister == nil {
			continue
		}
		if replaced := interceptor.OnRegister(tap); replaced != nil {
			tap = replaced
		}
	}
	return tap
}

func (c *interceptorChain) snapshot() []Interceptor {
	return slices.Clone(c.interceptors)
}

// invokeInterceptors runs every OnInvoke in order.
func invokeInterceptors(interceptors []Interceptor, ctx *Context, args []any) {
	for _, interceptor := range interceptors {
		if interceptor.OnInvoke == nil {
			continue
		}
		interceptor.OnInvoke(withContext(interceptor.UsesContext, ctx, args)...)
	}
}

// tapInterceptors runs every OnTap in order for tap.
func tapInterceptors(interceptors []Interceptor, tap *Tap, ctx *Context, args []any) {
	for _, interceptor := range interceptors {
		if interceptor.OnTap == nil {
			continue
		}
		interceptor.OnTap(tap, withContext(interceptor.UsesContext, ctx, args)...)
	}
}

// withContext prepends ctx to args when requested.
func withContext(use bool, ctx *Context, args []any) []any {
	if !use || ctx == nil {
		return args
	}
	out := make([]any, 0, len(args)+1)
	out = append(out, ctx)
	return append(out, args...)
}
