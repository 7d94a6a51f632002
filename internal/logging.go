package internal

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogging builds the process logger. Logs go to stderr so they never
// interleave with report output on stdout.
func InitLogging(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
