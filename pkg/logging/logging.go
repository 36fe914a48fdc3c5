// transactions-check/pkg/logging/logging.go
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New builds the run logger writing to stdout and the run-log file.
// The returned closer flushes and closes the file sink; call it once at
// process end. The logger is passed around explicitly, there is no
// package-global instance.
func New(path string) (zerolog.Logger, func() error, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	w := zerolog.MultiLevelWriter(os.Stdout, f)
	logger := zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	return logger, f.Close, nil
}

// NewDiscard returns a logger that drops everything, for tests.
func NewDiscard() zerolog.Logger {
	return zerolog.New(io.Discard)
}
