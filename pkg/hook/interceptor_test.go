package hook

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapping returns an interceptor that makes every sync tap also record
// "<prefix>:<name>" before running.
func wrapping(rec *recorder, prefix string) Interceptor {
	return Interceptor{
		Name: prefix,
		OnRegister: func(tap *Tap) *Tap {
			inner, ok := tap.Fn.(SyncFunc)
			if !ok {
				return nil
			}
			name := tap.Name
			wrapped := tap.clone()
			wrapped.Fn = SyncFunc(func(args ...any) error {
				rec.add(prefix + ":" + name)
				return inner(args...)
			})
			return wrapped
		},
	}
}

func TestHook_Intercept_ReplaysOverExistingTaps(t *testing.T) {
	h := New()
	rec := &recorder{}
	require.NoError(t, h.Tap("A", rec.sync("A")))
	require.NoError(t, h.Tap("B", rec.sync("B")))

	require.NoError(t, h.CallSync())
	assert.Equal(t, []string{"A", "B"}, rec.take())

	h.Intercept(wrapping(rec, "w"))

	require.NoError(t, h.CallSync())
	assert.Equal(t, []string{"w:A", "A", "w:B", "B"}, rec.take())

	require.NoError(t, h.Tap("C", rec.sync("C")))
	require.NoError(t, h.CallSync())
	assert.Equal(t, []string{"w:A", "A", "w:B", "B", "w:C", "C"}, rec.take())
}

func TestHook_Intercept_FoldsInOrder(t *testing.T) {
	h := New()
	rec := &recorder{}
	h.Intercept(wrapping(rec, "first"))
	h.Intercept(wrapping(rec, "second"))

	require.NoError(t, h.Tap("A", rec.sync("A")))
	require.NoError(t, h.CallSync())

	// second wraps the result of first, so it runs outermost.
	assert.Equal(t, []string{"second:A", "first:A", "A"}, rec.take())
}

func TestHook_Intercept_NilResultKeepsTap(t *testing.T) {
	h := New()
	rec := &recorder{}
	var seen []string
	require.NoError(t, h.Tap("A", rec.sync("A")))

	h.Intercept(Interceptor{
		OnRegister: func(tap *Tap) *Tap {
			seen = append(seen, tap.Name)
			return nil
		},
	})
	require.NoError(t, h.Tap("B", rec.sync("B")))

	assert.Equal(t, []string{"A", "B"}, seen)
	require.NoError(t, h.CallSync())
	assert.Equal(t, []string{"A", "B"}, rec.take())
}

func TestHook_Intercept_ReplayDoesNotReorder(t *testing.T) {
	h := New()
	rec := &recorder{}
	require.NoError(t, h.Tap("A", rec.sync("A")))
	require.NoError(t, h.Tap("B", rec.sync("B")))

	h.Intercept(Interceptor{
		OnRegister: func(tap *Tap) *Tap {
			if tap.Name == "A" {
				tap.Stage = 100
			}
			return tap
		},
	})

	require.NoError(t, h.CallSync())
	assert.Equal(t, []string{"A", "B"}, rec.take())

	taps := h.Taps()
	assert.Equal(t, 100, taps[0].Stage)
	assert.Equal(t, 0, taps[1].Stage)
}

func TestHook_Intercept_InvocationEvents(t *testing.T) {
	h := New("x", "y")
	rec := &recorder{}

	for _, prefix := range []string{"i1", "i2"} {
		prefix := prefix // per-iteration copy; go directive is below 1.22
		h.Intercept(Interceptor{
			OnInvoke: func(args ...any) {
				rec.add(fmt.Sprintf("%s:invoke%v", prefix, args))
			},
			OnTap: func(tap *Tap, args ...any) {
				rec.add(fmt.Sprintf("%s:tap:%s%v", prefix, tap.Name, args))
			},
		})
	}
	h.Intercept(Interceptor{})

	require.NoError(t, h.Tap("A", rec.sync("A")))
	require.NoError(t, h.Tap("B", rec.sync("B")))
	require.NoError(t, h.CallSync(1, 2))

	assert.Equal(t, []string{
		"i1:invoke[1 2]",
		"i2:invoke[1 2]",
		"i1:tap:A[1 2]",
		"i2:tap:A[1 2]",
		"A",
		"i1:tap:B[1 2]",
		"i2:tap:B[1 2]",
		"B",
	}, rec.take())
}

func TestHook_Intercept_InvokeFiresWithoutTaps(t *testing.T) {
	h := New()
	invoked := 0
	h.Intercept(Interceptor{OnInvoke: func(...any) { invoked++ }})

	require.NoError(t, h.CallSync())
	assert.Equal(t, 1, invoked)
}

func TestHook_Context(t *testing.T) {
	h := New("value")

	var tapCtx, invokeCtx, onTapCtx *Context
	var tapArgs []any
	h.Intercept(Interceptor{
		UsesContext: true,
		OnInvoke: func(args ...any) {
			invokeCtx, _ = ContextFrom(args)
			invokeCtx.Set("seen", args[1])
		},
		OnTap: func(_ *Tap, args ...any) {
			onTapCtx, _ = ContextFrom(args)
		},
	})
	require.NoError(t, h.TapOptions(Options{Name: "ctx", Context: true}, func(args ...any) error {
		tapArgs = args
		tapCtx, _ = ContextFrom(args)
		return nil
	}))
	var plainArgs []any
	require.NoError(t, h.Tap("plain", func(args ...any) error {
		plainArgs = args
		return nil
	}))

	require.NoError(t, h.CallSync("v"))

	require.NotNil(t, tapCtx)
	assert.Same(t, tapCtx, invokeCtx)
	assert.Same(t, tapCtx, onTapCtx)
	assert.NotEmpty(t, tapCtx.ID())
	assert.Equal(t, "v", tapArgs[1])
	assert.Equal(t, []any{"v"}, plainArgs)

	seen, ok := tapCtx.Get("seen")
	require.True(t, ok)
	assert.Equal(t, "v", seen)

	first := tapCtx.ID()
	require.NoError(t, h.CallSync("w"))
	assert.NotEqual(t, first, tapCtx.ID())
}

func TestContextFrom(t *testing.T) {
	_, ok := ContextFrom(nil)
	assert.False(t, ok)

	_, ok = ContextFrom([]any{"value"})
	assert.False(t, ok)
}
