package hook

import "fmt"

// Kind is the execution discipline of a tap, and of a hook invocation.
type Kind int

const (
	// KindSync taps run inline and report failures by returning an error.
	KindSync Kind = iota
	// KindAsync taps receive a continuation they must call exactly once.
	KindAsync
	// KindPromise taps return a Future the chain waits on.
	KindPromise

	kindCount = iota
)

// String returns the name used for the kind in scenario files and logs.
func (k Kind) String() string {
	switch k {
	case KindSync:
		return "sync"
	case KindAsync:
		return "async"
	case KindPromise:
		return "promise"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a kind name back into a Kind. An empty name means sync.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "", "sync":
		return KindSync, nil
	case "async":
		return KindAsync, nil
	case "promise":
		return KindPromise, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrConfiguration, name)
	}
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < kindCount
}
