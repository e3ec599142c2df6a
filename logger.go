package ipapcs

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// The package keeps a single settable logger, following the pattern of
// github.com/consensys/gnark/logger: callers that embed this engine in a
// larger proof system can redirect its structured logs into their own
// sink with SetLogger; by default it writes human-readable output to
// stderr at info level.
var (
	loggerMu sync.RWMutex
	baseLog  = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel).With().Timestamp().Logger()
)

// Logger returns the engine's current base logger.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return baseLog
}

// SetLogger replaces the engine's base logger.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	baseLog = l
}
