// Package logging provides the process wide logger shared by the demos.
package logging

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LevelEnv names the environment variable holding the log level (debug,
// info, warn, error).
const LevelEnv = "MP1_LOG_LEVEL"

var (
	once   sync.Once
	logger *log.Logger
)

// Logger returns the shared logger, creating it on first use.
func Logger() *log.Logger {
	once.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          filepath.Base(os.Args[0]),
		})
		logger.SetLevel(levelFromEnv(os.Getenv(LevelEnv)))
	})
	return logger
}

func levelFromEnv(s string) log.Level {
	if s == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
