// Package interceptor provides ready-made hook interceptors for logging and
// Prometheus metrics.
package interceptor
