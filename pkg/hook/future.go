package hook

import "sync"

// Future is a one-shot completion carrying an optional error.
//
// Continuations registered with Then run on the goroutine that settles the
// future, or immediately when it is already settled. A Future settles once;
// later Resolve or Reject calls are ignored.
type Future struct {
	mu      sync.Mutex
	done    chan struct{}
	settled bool
	err     error
	then    []func(error)
}

// NewFuture creates a pending future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolved returns a future already settled without error.
func Resolved() *Future {
	f := NewFuture()
	f.Resolve()
	return f
}

// Rejected returns a future already settled with err.
func Rejected(err error) *Future {
	f := NewFuture()
	f.Reject(err)
	return f
}

// Go runs fn on a new goroutine and settles the returned future with its result.
func Go(fn func() error) *Future {
	f := NewFuture()
	go func() {
		f.settle(fn())
	}()
	return f
}

// Resolve settles the future successfully.
func (f *Future) Resolve() bool {
	return f.settle(nil)
}

// Reject settles the future with err. A nil err resolves it.
func (f *Future) Reject(err error) bool {
	return f.settle(err)
}

func (f *Future) settle(err error) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.settled = true
	f.err = err
	then := f.then
	f.then = nil
	close(f.done)
	f.mu.Unlock()

	for _, fn := range then {
		fn(err)
	}
	return true
}

// Then registers fn to run once the future settles.
func (f *Future) Then(fn func(err error)) {
	f.mu.Lock()
	if !f.settled {
		f.then = append(f.then, fn)
		f.mu.Unlock()
		return
	}
	err := f.err
	f.mu.Unlock()

	fn(err)
}

// Done is closed when the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles and returns its error.
func (f *Future) Wait() error {
	<-f.done
	return f.Err()
}

// Err returns the settled error, or nil while the future is pending.
func (f *Future) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
