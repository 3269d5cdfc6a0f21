package hook

// Intercept adds an interceptor. Its OnRegister, if any, is applied right
// away to every registered tap in order. Compiled call chains are dropped.
func (h *Hook) Intercept(interceptor Interceptor) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.resetCompilation()
	h.interceptors.add(interceptor, h.registry.taps)
}
