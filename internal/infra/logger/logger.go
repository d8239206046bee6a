package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Debug bool
	// Output receives log lines; defaults to os.Stderr so stdout stays clean
	// for report output.
	Output io.Writer
}

var (
	mu     sync.RWMutex
	global = zap.NewNop().Sugar()
)

func Setup(cfg Config) (func() error, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var encCfg zapcore.EncoderConfig
	level := zap.InfoLevel
	if cfg.Debug {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zap.DebugLevel
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(level),
	)

	opts := []zap.Option{}
	if cfg.Debug {
		opts = append(opts, zap.AddCaller())
	}
	l := zap.New(core, opts...).Sugar()

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debugw("logger.initialized", "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		// Sync on a terminal returns EINVAL/ENOTTY; nothing to report there.
		_ = global.Sync()
		global = zap.NewNop().Sugar()
		return nil
	}

	return cleanup, nil
}

func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
