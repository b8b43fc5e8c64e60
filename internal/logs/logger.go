package logs

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	Logger  zerolog.Logger
	logFile *os.File
	mu      sync.Mutex
)

// Discards everything until Initialize points the logger at a file, so
// tests and one-shot CLI runs leave no debug.log behind.
func init() {
	Logger = zerolog.Nop()
}

// Initialize points the logger at debug.log inside logDir. An empty logDir
// means the working directory.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		logDir = "."
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.Error().Err(err).Str("path", logPath).Msg("failed to open log file")
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = newLogger(f)

	Logger.Debug().Str("path", logPath).Msg("logger initialized")

	return nil
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().
		Str("app", "prodp").
		Timestamp().
		Caller().
		Logger()
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger = zerolog.Nop()
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
