// Package applog provides the application's file logger. The terminal
// belongs to the UI, so log output always goes to a rotated file.
package applog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envMode  = "RECIPEKEEPER_ENV"
	envLevel = "LOG_LEVEL"
)

var (
	logger *zap.SugaredLogger

	// noop is returned by L until Init has run.
	noop = zap.NewNop().Sugar()
)

// L returns the global logger or a no-op fallback if uninitialized.
func L() *zap.SugaredLogger {
	if logger == nil {
		return noop
	}
	return logger
}

// Init initializes the global logger and returns the log file path.
//
// RECIPEKEEPER_ENV=dev writes human-readable lines to app-debug.log, anything
// else writes JSON to app.log. LOG_LEVEL overrides the level (debug in dev,
// info otherwise).
func Init(appName string) string {
	mode := detectMode()
	logPath := selectLogPath(appName, mode)

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, zap.NewAtomicLevelAt(detectLogLevel(mode)))
	logger = zap.New(core, zap.AddCaller()).Sugar()

	logger.Infow("logger initialized", "mode", mode, "path", logPath)
	return logPath
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func detectMode() string {
	switch strings.ToLower(os.Getenv(envMode)) {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

// selectLogPath picks $XDG_STATE_HOME/<app>, then ~/.local/state/<app>,
// then the temp dir.
func selectLogPath(appName, mode string) string {
	fileName := "app.log"
	if mode == "dev" {
		fileName = "app-debug.log"
	}

	var dir string
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		dir = filepath.Join(xdg, appName)
	} else if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".local", "state", appName)
	} else {
		dir = filepath.Join(os.TempDir(), appName)
	}
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, fileName)
}

func detectLogLevel(mode string) zapcore.Level {
	switch strings.ToLower(os.Getenv(envLevel)) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		if mode == "dev" {
			return zap.DebugLevel
		}
		return zap.InfoLevel
	}
}
