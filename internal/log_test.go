package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogging(zap.New(core))

	logger.Printf("lease reclaimed from %s", "alice")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "lease reclaimed from alice", entry.Message)
	require.Equal(t, zapcore.InfoLevel, entry.Level)
	require.Equal(t, "go-lease", entry.LoggerName)
}

func TestSetLogger(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(NewZapLogging(zap.New(core)))
	GetLogger().Printf("hello")
	require.Equal(t, 1, logs.FilterMessage("hello").Len())
}
