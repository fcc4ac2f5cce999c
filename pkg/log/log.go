package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds a JSON sugared logger named after the application.
// Output paths default to stderr; "stderr", "stdout" and file paths are accepted.
func NewZapLogger(name string, level zapcore.Level, outputPaths ...string) (*zap.SugaredLogger, error) {
	if len(outputPaths) == 0 {
		outputPaths = []string{"stderr"}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return logger.Named(name).Sugar(), nil
}
