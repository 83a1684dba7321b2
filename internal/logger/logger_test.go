package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestOrGlobal(t *testing.T) {
	local := zap.NewExample()
	assert.Same(t, local, OrGlobal(local))
	assert.Same(t, Log, OrGlobal(nil))
}

func TestInitLoggerWithConfig(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	InitLoggerWithConfig(LoggerConfig{Level: "debug", Stage: "local"})
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))

	InitLoggerWithConfig(LoggerConfig{Level: "warn", Stage: "prod", EnableJSON: true})
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))
}
