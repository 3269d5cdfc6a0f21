package interceptor

import (
	"github.com/lerenn/tapline/pkg/hook"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus counters for hook activity.
type Metrics struct {
	TapsRegistered *prometheus.CounterVec
	Calls          *prometheus.CounterVec
	TapRuns        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TapsRegistered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tapline",
				Name:      "taps_registered_total",
				Help:      "Total number of taps registered or replayed per hook",
			},
			[]string{"hook", "kind"},
		),
		Calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tapline",
				Name:      "calls_total",
				Help:      "Total number of hook invocations",
			},
			[]string{"hook"},
		),
		TapRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tapline",
				Name:      "tap_runs_total",
				Help:      "Total number of taps started",
			},
			[]string{"hook", "tap"},
		),
	}
}

// Interceptor returns an interceptor feeding the counters for hookName.
func (m *Metrics) Interceptor(hookName string) hook.Interceptor {
	return hook.Interceptor{
		Name: "metrics",
		OnRegister: func(tap *hook.Tap) *hook.Tap {
			m.TapsRegistered.WithLabelValues(hookName, tap.Kind.String()).Inc()
			return nil
		},
		OnInvoke: func(...any) {
			m.Calls.WithLabelValues(hookName).Inc()
		},
		OnTap: func(tap *hook.Tap, _ ...any) {
			m.TapRuns.WithLabelValues(hookName, tap.Name).Inc()
		},
	}
}
