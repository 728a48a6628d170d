// Package utils keeps process-wide singletons shared by every component.
package utils

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logInstance zerolog.Logger
	onceForLog  sync.Once
)

// Logger returns the process-wide logger. It is built exactly once; callers
// derive component loggers from it:
//
//	logger := utils.Logger().With().Str("module", "server").Logger()
func Logger() zerolog.Logger {
	onceForLog.Do(func() {
		logInstance = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	})
	return logInstance
}
