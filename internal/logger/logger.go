// Package logger owns the process-wide zap logger shared by the FinTrack
// server: request logging middleware, the composition root, and handler
// fallbacks all log through Get. ENV=production selects the JSON encoder;
// anything else gets the console encoder for local development.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger for the given environment. Safe to call
// more than once; only the first call takes effect.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error
		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}
		if err != nil {
			// A process without logging is worse than one with a silent
			// logger; fall back to nop rather than failing startup.
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger
// on first use if Init was never called.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered entries; deferred from main before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
