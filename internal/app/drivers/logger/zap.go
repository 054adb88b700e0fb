package logger

import (
	"appointment-booking-service/internal/app/config"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the JSON logger shared by every layer. Production
// writes to the configured files; any other environment logs to the console.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (*zap.Logger, error) {
	logLevel, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		logLevel = zapcore.InfoLevel
	}

	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if internalConfig.App.Env == "production" {
		outputPaths = []string{driverConfig.Logger.OutputFileName}
		errorOutputPaths = []string{"stderr", driverConfig.Logger.OutputErrorFileName}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      internalConfig.App.Env == "development",
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
		InitialFields: map[string]interface{}{
			"service": "appointment-booking-service",
			"version": internalConfig.App.Version,
		},
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return zapLogger, nil
}
