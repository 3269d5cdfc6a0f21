// Package scenario replays scenario files against a hook and records the
// order taps ran in after every registration.
package scenario

import (
	"fmt"
	"sync"
	"time"

	"github.com/lerenn/tapline/internal/base"
	"github.com/lerenn/tapline/pkg/config"
	"github.com/lerenn/tapline/pkg/hook"
	"github.com/lerenn/tapline/pkg/interceptor"
	"github.com/lerenn/tapline/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultCallTimeout = 10 * time.Second

// Runner replays scenarios.
type Runner struct {
	*base.Base
	metrics     *interceptor.Metrics
	callTimeout time.Duration
}

// NewRunnerParams contains parameters for creating a new Runner instance.
type NewRunnerParams struct {
	Logger     logger.Logger
	Registerer prometheus.Registerer
	Verbose    bool
	// CallTimeout bounds how long an async or promise call may take.
	CallTimeout time.Duration
}

// NewRunner creates a new Runner instance.
func NewRunner(params NewRunnerParams) *Runner {
	reg := params.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	timeout := params.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Runner{
		Base: base.NewBase(base.NewBaseParams{
			Logger:  params.Logger,
			Verbose: params.Verbose,
		}),
		metrics:     interceptor.NewMetrics(reg),
		callTimeout: timeout,
	}
}

// StepResult is the outcome of one step.
type StepResult struct {
	Step config.Step
	// RegisterErr is set when the hook rejected the tap.
	RegisterErr error
	// Order lists the taps that ran when the hook was called after the step.
	Order []string
	// CallErr is the error the call reported, if any.
	CallErr error
}

// Report is the outcome of a whole scenario.
type Report struct {
	Name  string
	Mode  hook.Kind
	Steps []StepResult
}

// trace records tap runs for one call.
type trace struct {
	mu    sync.Mutex
	order []string
}

func (t *trace) add(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.order = append(t.order, name)
}

func (t *trace) take() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	order := t.order
	t.order = nil
	return order
}

// Run registers each step's tap in turn and calls the hook after each one.
func (r *Runner) Run(s config.Scenario) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	mode, _ := s.CallKind()

	h := r.newHook(s)
	tr := &trace{}
	report := Report{Name: s.Name, Mode: mode}

	for i, step := range s.Steps {
		result := StepResult{Step: step}

		r.VerbosePrint("Step %d: registering tap %q", i+1, step.Name)
		result.RegisterErr = r.register(h, step, tr)
		if result.RegisterErr != nil {
			r.VerbosePrint("Step %d: registration rejected: %v", i+1, result.RegisterErr)
		}

		result.CallErr = r.call(h, mode, s.CallArgs())
		result.Order = tr.take()
		if result.Order == nil {
			result.Order = []string{}
		}
		r.VerbosePrint("Step %d: %s call ran %v", i+1, mode, result.Order)

		report.Steps = append(report.Steps, result)
	}

	return report, nil
}

// Order registers every step and returns the resulting tap order without
// calling the hook. Rejected steps are skipped.
func (r *Runner) Order(s config.Scenario) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	h := r.newHook(s)
	tr := &trace{}
	for _, step := range s.Steps {
		if err := r.register(h, step, tr); err != nil {
			r.VerbosePrint("Skipping step %q: %v", step.Name, err)
		}
	}

	taps := h.Taps()
	order := make([]string, len(taps))
	for i, tap := range taps {
		order[i] = tap.Name
	}
	return order, nil
}

func (r *Runner) newHook(s config.Scenario) *hook.Hook {
	h := hook.NewWithOptions(s.Params, hook.WithLogger(r.Logger))
	for _, name := range s.Interceptors {
		switch name {
		case config.InterceptorLogging:
			h.Intercept(interceptor.NewLogging(r.Logger, s.Name).Interceptor())
		case config.InterceptorMetrics:
			h.Intercept(r.metrics.Interceptor(s.Name))
		}
	}
	return h
}

// register adds a tap that records its name and fails when the step asks.
func (r *Runner) register(h *hook.Hook, step config.Step, tr *trace) error {
	opts, err := step.Options()
	if err != nil {
		return err
	}

	name := step.Name
	var failure error
	if step.Fail {
		failure = fmt.Errorf("%w: %s", ErrStepFailed, name)
	}

	switch opts.Kind {
	case hook.KindAsync:
		return h.TapAsync(opts, func(done hook.Callback, _ ...any) {
			go func() {
				tr.add(name)
				done(failure)
			}()
		})
	case hook.KindPromise:
		return h.TapPromise(opts, func(_ ...any) *hook.Future {
			return hook.Go(func() error {
				tr.add(name)
				return failure
			})
		})
	default:
		return h.TapOptions(opts, func(_ ...any) error {
			tr.add(name)
			return failure
		})
	}
}

// call invokes the hook with the requested kind and waits for completion.
func (r *Runner) call(h *hook.Hook, mode hook.Kind, args []any) error {
	switch mode {
	case hook.KindAsync:
		done := make(chan error, 1)
		if err := h.CallAsync(func(err error) { done <- err }, args...); err != nil {
			return err
		}
		return r.wait(done)
	case hook.KindPromise:
		future, err := h.CallPromise(args...)
		if err != nil {
			return err
		}
		done := make(chan error, 1)
		future.Then(func(err error) { done <- err })
		return r.wait(done)
	default:
		return h.CallSync(args...)
	}
}

func (r *Runner) wait(done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-time.After(r.callTimeout):
		return fmt.Errorf("%w after %s", ErrCallTimeout, r.callTimeout)
	}
}
