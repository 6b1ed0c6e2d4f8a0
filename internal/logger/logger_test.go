package logger

import (
	"testing"

	"tag-validator/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestGet_DefaultsToNop(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggerConfig
		level   zapcore.Level
		wantErr bool
	}{
		{"debug console", config.LoggerConfig{Level: "debug", Env: "development"}, zapcore.DebugLevel, false},
		{"production json", config.LoggerConfig{Level: "warn", Env: "production"}, zapcore.WarnLevel, false},
		{"empty level is info", config.LoggerConfig{}, zapcore.InfoLevel, false},
		{"bad level", config.LoggerConfig{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, Get().Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, Get().Core().Enabled(tt.level-1))
			}
		})
	}
}
