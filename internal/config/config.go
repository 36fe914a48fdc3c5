// transactions-check/internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/example/transactions-check/pkg/errors"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultReportPath = "report.html"
	defaultLogPath    = "logs/run.log"
)

type Config struct {
	// BaseURL is the transactions endpoint root, e.g.
	// https://api.example.com/transactions
	BaseURL string
	// Host is sent as the Host header on every request.
	Host string

	Timeout    time.Duration
	ReportPath string
	LogPath    string
}

// Load resolves configuration once at startup. A .env file in the working
// directory is merged into the environment first when present. Missing
// BASE_URL or HOST is a fatal configuration error: nothing can run
// without them.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:    os.Getenv("BASE_URL"),
		Host:       os.Getenv("HOST"),
		Timeout:    defaultTimeout,
		ReportPath: getEnv("REPORT_PATH", defaultReportPath),
		LogPath:    getEnv("LOG_PATH", defaultLogPath),
	}

	if cfg.BaseURL == "" {
		return Config{}, apperrors.Wrap(apperrors.CodeConfig, "BASE_URL is required", nil)
	}
	if cfg.Host == "" {
		return Config{}, apperrors.Wrap(apperrors.CodeConfig, "HOST is required", nil)
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, apperrors.Wrapf(apperrors.CodeConfig, err, "HTTP_TIMEOUT must be a positive number of seconds, got %q", v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
