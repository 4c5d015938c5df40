package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging(t *testing.T) {
	l := NewZapLogger("vesting", "debug")
	l.Info("this is a info log test")
	l.Warn("this is a warn log test")
	l.Error("this is a error log test", WithField("age", 100), WithField("gender", "man"))
	l.Debug("this is a debug log test")
}

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerWith(zap.New(core))

	l.Warn("invocation failed", WithField("method", "claim"), WithField("error", errors.New("nothing left to claim")))
	l.Debugf("height %d", 7)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "invocation failed", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "claim", fields["method"])
	assert.Equal(t, "nothing left to claim", fields["error"])
	assert.Equal(t, "height 7", entries[1].Message)
}

func TestSetLogLevel(t *testing.T) {
	l := NewZapLogger("vesting", "info")
	assert.False(t, l.logger.Core().Enabled(zapcore.DebugLevel))
	l.SetLogLevel("debug")
	assert.True(t, l.logger.Core().Enabled(zapcore.DebugLevel))
	l.SetLogLevel("unknown")
	assert.False(t, l.logger.Core().Enabled(zapcore.DebugLevel))
}

func TestSweetenFields(t *testing.T) {
	l := NewZapLogger("vesting", "info")
	err := errors.New("boom")

	fields := l.SweetenFields([]interface{}{"contract", "core", err, WithField("height", 3), errors.New("ignored"), "dangling"})
	assert.Equal(t, []Field{
		WithField("contract", "core"),
		WithField("error", err),
		WithField("height", 3),
	}, fields)
}

func TestMockLogger(t *testing.T) {
	m := NewMockLogger()
	m.Warn("failed", WithField("method", "withdraw"))
	m.Infof("ok %s", "done")
	assert.Equal(t, []string{"WARN failed method=withdraw", "INFO ok done"}, m.Messages())
}
