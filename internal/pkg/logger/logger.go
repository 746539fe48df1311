package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Production gets JSON output,
// anything else a colored console encoder.
func New(env string) *zap.Logger {
	var cfg zap.Config

	if env == "production" || env == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.OutputPaths = []string{"stdout"}

	l, err := cfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return l
}
