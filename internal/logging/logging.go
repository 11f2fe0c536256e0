// Package logging provides structured JSON logging for the application.
// The TUI owns stdout, so log lines go to a file under the config directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/config"
)

const logFileName = "director.log"

// New creates a logger writing JSON lines to the log file with the
// specified level. Supported levels: debug, info, warn, error.
func New(level string) (zerolog.Logger, error) {
	dir, err := config.Dir()
	if err != nil {
		return zerolog.Nop(), err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), err
	}

	path := filepath.Join(dir, logFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(file).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SanitizeKey masks an API key for safe logging.
// Shows first 4 and last 4 characters only.
func SanitizeKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
