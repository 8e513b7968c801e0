package logger

import (
	"learnpath_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	defer Level.SetLevel(zapcore.InfoLevel)

	tests := []struct {
		name string
		mode string
		lvl  string
		want zapcore.Level
	}{
		{"debug mode wins", "debug", "error", zapcore.DebugLevel},
		{"configured level", "release", "warn", zapcore.WarnLevel},
		{"bad level falls back", "release", "loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetLevel(&config.Config{
				Server: config.ServerConfig{Mode: tt.mode},
				Log:    config.LogConfig{Level: tt.lvl},
			})
			assert.Equal(t, tt.want, Level.Level())
		})
	}
}
