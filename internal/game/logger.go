package game

import (
	"roomdrag/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the process logger: console output in development mode,
// JSON otherwise.
func NewLogger(cfg config.Log) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.ZapLevel())
	zc.DisableCaller = true
	return zc.Build()
}
