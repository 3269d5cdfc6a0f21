// Package dependencies provides a centralized dependency container for tapline.
package dependencies

import (
	"errors"

	"github.com/lerenn/tapline/pkg/config"
	"github.com/lerenn/tapline/pkg/logger"
	"github.com/lerenn/tapline/pkg/scenario"
	"github.com/prometheus/client_golang/prometheus"
)

// Validation errors for missing dependencies.
var (
	ErrConfigMissing     = errors.New("config dependency is required but not set")
	ErrLoggerMissing     = errors.New("logger dependency is required but not set")
	ErrRegistererMissing = errors.New("metrics registerer dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	Config     config.Manager
	Logger     logger.Logger
	Registerer prometheus.Registerer
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		Config:     config.NewManager(),
		Logger:     logger.NewNoopLogger(),
		Registerer: prometheus.NewRegistry(),
	}
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithRegisterer sets the metrics registerer and returns the instance for chaining.
func (d *Dependencies) WithRegisterer(reg prometheus.Registerer) *Dependencies {
	d.Registerer = reg
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Registerer, ErrRegistererMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}

// NewRunner builds a scenario runner from the dependencies.
func (d *Dependencies) NewRunner(verbose bool) (*scenario.Runner, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return scenario.NewRunner(scenario.NewRunnerParams{
		Logger:     d.Logger,
		Registerer: d.Registerer,
		Verbose:    verbose,
	}), nil
}
