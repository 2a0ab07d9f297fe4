package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.sugar)
	assert.NotNil(t, logger.base)
}

func TestNewForEnv_Development(t *testing.T) {
	logger := NewForEnv("development")
	assert.NotNil(t, logger)

	// Test that Debug doesn't panic
	logger.Debug("Test message: %s", "debug")
}

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core)

	logger.Info("User %s logged in with ID %d", "john", 123)
	logger.Warn("Warning: %s count is %d", "items", 5)
	logger.Error("Failed to process request %d: %s", 404, "not found")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "User john logged in with ID 123", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Warning: items count is 5", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "Failed to process request 404: not found", entries[2].Message)
}

func TestLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewWithCore(core).With("field", "createPost")

	logger.Info("resolved")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "createPost", entries[0].ContextMap()["field"])
}
