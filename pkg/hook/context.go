package hook

import (
	"sync"

	"github.com/google/uuid"
)

// Context is the per-invocation value shared by taps and interceptors that
// ask for it. A fresh Context is created for every call of the hook.
type Context struct {
	id string

	mu     sync.RWMutex
	values map[string]any
}

func newContext() *Context {
	return &Context{
		id:     uuid.NewString(),
		values: make(map[string]any),
	}
}

// ID returns the unique identifier of the invocation.
func (c *Context) ID() string {
	return c.id
}

// Set stores a value for the rest of the invocation.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Get returns a value stored by an earlier tap or interceptor.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// ContextFrom extracts the Context passed as first argument to a tap or
// interceptor registered with context enabled.
func ContextFrom(args []any) (*Context, bool) {
	if len(args) == 0 {
		return nil, false
	}
	c, ok := args[0].(*Context)
	return c, ok
}
