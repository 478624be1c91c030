package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLEX_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *log.Logger
)

// Logger returns the process-wide debug logger. The first call opens the
// file named by FLEX_DEBUG; if the variable is unset or the file cannot be
// opened, the returned logger discards output.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		path := os.Getenv(EnvVar)
		if path == "" || initLocked(path) != nil {
			logger = New(io.Discard)
		}
	}
	return logger
}

// Init points the debug logger at path, replacing any previous file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "flex-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeErr := closeLocked()
	logFile = f
	logger = New(f)
	if closeErr != nil {
		logger.Warn("failed to close previous debug log", "err", closeErr)
	}
	return nil
}

// Close closes the debug log file. Later calls to Logger discard output
// until Init is called again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	err := closeLocked()
	logger = New(io.Discard)
	return err
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// New creates a debug-level logger writing to w with millisecond timestamps.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "flex",
	})
}
