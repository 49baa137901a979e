package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestWrapWith(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := Wrap(zap.New(core)).With(zap.String("component", "test"))

	l.Debug("hidden")
	l.Info("visible", zap.Int("n", 1))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "visible", entries[0].Message)
		ctx := entries[0].ContextMap()
		assert.Equal(t, "test", ctx["component"])
		assert.EqualValues(t, 1, ctx["n"])
	}
}

func TestNewZapLogger(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{Encoding: "console", Level: "error", IsDevelopment: true})
	assert.NotNil(t, l)
	l.Info("dropped")
}
