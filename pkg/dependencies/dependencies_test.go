package dependencies

import (
	"testing"

	"github.com/lerenn/tapline/pkg/config"
	"github.com/lerenn/tapline/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDependencies_Validate_Missing(t *testing.T) {
	tests := []struct {
		name    string
		clear   func(d *Dependencies)
		wantErr error
	}{
		{name: "config", clear: func(d *Dependencies) { d.Config = nil }, wantErr: ErrConfigMissing},
		{name: "logger", clear: func(d *Dependencies) { d.Logger = nil }, wantErr: ErrLoggerMissing},
		{name: "registerer", clear: func(d *Dependencies) { d.Registerer = nil }, wantErr: ErrRegistererMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := New()
			tt.clear(deps)

			assert.ErrorIs(t, deps.Validate(), tt.wantErr)
			_, err := deps.NewRunner(false)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestDependencies_Validate_AllMissing returns the first missing dependency.
func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{}

	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.Config)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Registerer)
	assert.NoError(t, deps.Validate())
}

func TestDependencies_With(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConfig := config.NewMockManager(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	reg := prometheus.NewRegistry()

	deps := New().
		WithConfig(mockConfig).
		WithLogger(mockLogger).
		WithRegisterer(reg)

	assert.Same(t, mockConfig, deps.Config)
	assert.Same(t, mockLogger, deps.Logger)
	assert.Same(t, reg, deps.Registerer)

	runner, err := deps.NewRunner(true)
	require.NoError(t, err)
	assert.True(t, runner.IsVerbose())
}
