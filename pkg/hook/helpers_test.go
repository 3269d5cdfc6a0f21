package hook

import "sync"

// recorder collects the names of the taps that ran.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := r.calls
	r.calls = nil
	return calls
}

func (r *recorder) sync(name string) SyncFunc {
	return func(_ ...any) error {
		r.add(name)
		return nil
	}
}

func (r *recorder) async(name string) AsyncFunc {
	return func(done Callback, _ ...any) {
		r.add(name)
		go done(nil)
	}
}

func (r *recorder) promise(name string) PromiseFunc {
	return func(_ ...any) *Future {
		return Go(func() error {
			r.add(name)
			return nil
		})
	}
}
