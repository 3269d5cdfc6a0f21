package interceptor

import (
	"testing"

	"github.com/lerenn/tapline/pkg/hook"
	"github.com/lerenn/tapline/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogging_Interceptor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := logger.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Logf("Registered tap on %s: %s", "build", gomock.Any()),
		mockLogger.EXPECT().Logf("Registered tap on %s: %s", "build", gomock.Any()),
		mockLogger.EXPECT().Logf("Calling %s with args: %v", "build", []any{"input"}),
		mockLogger.EXPECT().Logf("Running tap on %s: %s", "build", "A"),
		mockLogger.EXPECT().Logf("Running tap on %s: %s", "build", "B"),
	)

	h := hook.New("source")
	require.NoError(t, h.Tap("A", func(...any) error { return nil }))
	h.Intercept(NewLogging(mockLogger, "build").Interceptor())
	require.NoError(t, h.Tap("B", func(...any) error { return nil }))

	require.NoError(t, h.CallSync("input"))
}

func TestLogging_OnRegister_KeepsTap(t *testing.T) {
	l := NewLogging(logger.NewNoopLogger(), "build")
	assert.Nil(t, l.OnRegister(&hook.Tap{Name: "A"}))
}
