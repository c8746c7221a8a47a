package cmd

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "info"

// NewLogger builds a JSON logger, or a console logger at debug level when
// dev is set. LOG_LEVEL overrides the level.
func NewLogger(dev bool) (*zap.Logger, error) {
	text := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if text == "" {
		text = defaultLogLevel
		if dev {
			text = "debug"
		}
	}
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(text)); err != nil {
		_ = level.UnmarshalText([]byte(defaultLogLevel))
	}

	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	}
	cfg.Level = level
	cfg.DisableStacktrace = true

	return cfg.Build()
}
