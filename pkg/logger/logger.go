// Package logger wires a process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Config holds logger settings
type Config struct {
	ServiceName string
	Development bool
}

var (
	mu     sync.Mutex
	global *zap.Logger = zap.NewNop()
)

// Init builds the global logger. Call once at startup.
func Init(cfg *Config) error {
	var (
		log *zap.Logger
		err error
	)
	if cfg != nil && cfg.Development {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	if cfg != nil && cfg.ServiceName != "" {
		log = log.With(zap.String("service", cfg.ServiceName))
	}

	mu.Lock()
	global = log
	mu.Unlock()
	return nil
}

// Get returns the global logger
func Get() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return global
}

// Sync flushes buffered log entries
func Sync() {
	_ = Get().Sync()
}
