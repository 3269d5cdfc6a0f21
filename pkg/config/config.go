// Package config loads the scenario files driving tapctl.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lerenn/tapline/configs"
	"github.com/lerenn/tapline/pkg/hook"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=config.go -destination=mockconfig.gen.go -package=config

// Interceptor names accepted in scenario files.
const (
	InterceptorLogging = "logging"
	InterceptorMetrics = "metrics"
)

// Scenario describes a hook, the taps registered on it one step at a time,
// and how it is called after each step.
type Scenario struct {
	Name         string   `yaml:"name" toml:"name"`
	Params       []string `yaml:"params" toml:"params"`
	Args         []string `yaml:"args" toml:"args"`
	Mode         string   `yaml:"mode" toml:"mode"`
	Interceptors []string `yaml:"interceptors" toml:"interceptors"`
	Steps        []Step   `yaml:"steps" toml:"steps"`
}

// Step registers one tap.
type Step struct {
	Name    string   `yaml:"name" toml:"name"`
	Kind    string   `yaml:"kind" toml:"kind"`
	Stage   int      `yaml:"stage" toml:"stage"`
	Before  []string `yaml:"before" toml:"before"`
	Context bool     `yaml:"context" toml:"context"`
	// Fail makes the tap report an error when it runs.
	Fail bool `yaml:"fail" toml:"fail"`
}

// Manager interface provides scenario loading functionality.
type Manager interface {
	Load(path string) (Scenario, error)
	Default() (Scenario, error)
	EnsureFile(path string) (bool, error)
}

type realManager struct{}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// Load reads and validates a scenario. Files ending in .toml are read as
// TOML, everything else as YAML.
func (c *realManager) Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Scenario{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, path)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &scenario)
	} else {
		err = yaml.Unmarshal(data, &scenario)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrScenarioParse, err)
	}

	if err := scenario.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario: %w", err)
	}

	return scenario, nil
}

// Default returns the embedded default scenario.
func (c *realManager) Default() (Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(configs.DefaultScenarioYAML, &scenario); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrScenarioParse, err)
	}
	return scenario, nil
}

// EnsureFile writes the embedded default scenario to path if nothing exists
// there yet. It reports whether the file was created.
func (c *realManager) EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check scenario file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create scenario directory: %w", err)
	}
	if err := os.WriteFile(path, configs.DefaultScenarioYAML, 0644); err != nil {
		return false, fmt.Errorf("failed to write scenario file: %w", err)
	}

	return true, nil
}

// Validate validates the scenario values. Empty step names are accepted so
// that a scenario can show a rejected registration.
func (s *Scenario) Validate() error {
	if len(s.Args) != len(s.Params) {
		return fmt.Errorf("%w: %d params, %d args", ErrArgsMismatch, len(s.Params), len(s.Args))
	}

	if _, err := s.CallKind(); err != nil {
		return err
	}

	for _, name := range s.Interceptors {
		if name != InterceptorLogging && name != InterceptorMetrics {
			return fmt.Errorf("%w: %q", ErrUnknownInterceptor, name)
		}
	}

	for i, step := range s.Steps {
		if _, err := step.TapKind(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return nil
}

// CallKind returns the kind the hook is called with. It defaults to sync.
func (s *Scenario) CallKind() (hook.Kind, error) {
	kind, err := hook.ParseKind(s.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s.Mode)
	}
	return kind, nil
}

// TapKind returns the kind of the tap registered by the step.
func (s Step) TapKind() (hook.Kind, error) {
	kind, err := hook.ParseKind(s.Kind)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	return kind, nil
}

// Options converts the step into hook registration options.
func (s Step) Options() (hook.Options, error) {
	kind, err := s.TapKind()
	if err != nil {
		return hook.Options{}, err
	}
	return hook.Options{
		Name:    s.Name,
		Kind:    kind,
		Stage:   s.Stage,
		Before:  s.Before,
		Context: s.Context,
	}, nil
}

// CallArgs returns the scenario args as hook call arguments.
func (s *Scenario) CallArgs() []any {
	args := make([]any, len(s.Args))
	for i, a := range s.Args {
		args[i] = a
	}
	return args
}
