package hook

// CallSync runs every tap in order and returns the first failure.
// It fails with ErrNonSyncTap when any registered tap is not sync.
func (h *Hook) CallSync(args ...any) error {
	u, err := h.unit(KindSync, args)
	if err != nil {
		return err
	}

	var result error
	u.Run(args, func(err error) {
		result = err
	})
	return result
}
