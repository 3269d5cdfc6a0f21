package hook

// CallPromise runs every tap in order and returns a future settled with the
// first failure, or resolved once all taps finished. Configuration errors are
// returned directly.
func (h *Hook) CallPromise(args ...any) (*Future, error) {
	u, err := h.unit(KindPromise, args)
	if err != nil {
		return nil, err
	}

	future := NewFuture()
	u.Run(args, func(err error) {
		future.Reject(err)
	})
	return future, nil
}
