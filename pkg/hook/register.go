package hook

// Register adds a tap. options is either the tap name or an Options value;
// fn is a SyncFunc, AsyncFunc or PromiseFunc matching the requested kind.
// Malformed input fails with an error wrapping ErrConfiguration and leaves
// the hook unchanged.
func (h *Hook) Register(options any, fn any) error {
	tap, err := newTap(options, fn)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	tap = h.interceptors.applyRegister(tap)
	h.registry.insert(tap)
	h.resetCompilation()
	return nil
}

// Tap registers a sync tap with default options.
func (h *Hook) Tap(name string, fn SyncFunc) error {
	return h.Register(name, fn)
}

// TapOptions registers a sync tap.
func (h *Hook) TapOptions(opts Options, fn SyncFunc) error {
	opts.Kind = KindSync
	return h.Register(opts, fn)
}

// TapAsync registers an async tap.
func (h *Hook) TapAsync(opts Options, fn AsyncFunc) error {
	opts.Kind = KindAsync
	return h.Register(opts, fn)
}

// TapPromise registers a promise tap.
func (h *Hook) TapPromise(opts Options, fn PromiseFunc) error {
	opts.Kind = KindPromise
	return h.Register(opts, fn)
}
