package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/berrythewa/sysclip/internal/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFileName is the file written under the log dir when file logging is on
const LogFileName = "sysclip.log"

// LoggerOptions are the command line switches that shape the logger
type LoggerOptions struct {
	Verbose bool
	Quiet   bool
}

// NewLogger creates a new logger instance tagged with a fresh run id
func NewLogger(cfg *config.Config, opts LoggerOptions) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	switch {
	case opts.Verbose:
		zcfg = zap.NewDevelopmentConfig()
	case opts.Quiet:
		zcfg = zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		zcfg = zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	zcfg.Encoding = cfg.Log.Format
	if zcfg.Encoding == "" {
		zcfg.Encoding = "console"
	}
	if zcfg.Encoding == "console" {
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zcfg.Sampling = nil
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	if cfg.Log.EnableFileLogging && cfg.SystemPaths.LogDir != "" {
		if err := os.MkdirAll(cfg.SystemPaths.LogDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zcfg.OutputPaths = append(zcfg.OutputPaths, LogFilePath(cfg))
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}

// LogFilePath returns where file logging writes for cfg
func LogFilePath(cfg *config.Config) string {
	return filepath.Join(cfg.SystemPaths.LogDir, LogFileName)
}
