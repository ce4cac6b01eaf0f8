package logger

import (
	"github.com/gomantics/runboard/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New(appCfg config.Config) *zap.Logger {
	var cfg zap.Config

	if appCfg.IsDev() {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func NewNop() *zap.Logger {
	return zap.NewNop()
}
