package hook

// CallAsync runs every tap in order and calls done once they all finished
// or one failed. Configuration errors are returned directly and done is
// not called.
func (h *Hook) CallAsync(done Callback, args ...any) error {
	u, err := h.unit(KindAsync, args)
	if err != nil {
		return err
	}

	if done == nil {
		done = func(error) {}
	}
	u.Run(args, done)
	return nil
}
