package obslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	logger, err := New(false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestNewVerboseEnablesDebugLevel(t *testing.T) {
	logger, err := New(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestWithComponentAddsField(t *testing.T) {
	logger, err := New(false)
	require.NoError(t, err)
	tagged := WithComponent(logger, "demo")
	assert.NotNil(t, tagged)

	core, logs := observer.New(zap.InfoLevel)
	WithComponent(zap.New(core), "demo").Info("hello")
	require.Len(t, logs.All(), 1)
	assert.Equal(t, "demo", logs.All()[0].ContextMap()["component"])
}
