// transactions-check/cmd/txncheck/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/example/transactions-check/internal/api"
	"github.com/example/transactions-check/internal/config"
	"github.com/example/transactions-check/internal/report"
	"github.com/example/transactions-check/internal/runner"
	"github.com/example/transactions-check/pkg/logging"
)

// Exit codes: 0 all checks passed, 1 at least one check failed or
// errored, 2 the run could not start (configuration). CI gates on this.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, closeLog, err := logging.New(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log sink: %v\n", err)
		return 2
	}
	defer closeLog()

	client := api.New(cfg, logger)
	defer client.Close()

	logger.Info().Str("base_url", cfg.BaseURL).Str("host", cfg.Host).Msg("starting run")

	outcomes := runner.New(client, logger).Run(context.Background())

	if err := report.Write(cfg.ReportPath, outcomes); err != nil {
		logger.Error().Err(err).Str("path", cfg.ReportPath).Msg("could not write report")
	} else {
		logger.Info().Str("path", cfg.ReportPath).Msg("report written")
	}

	passed, failed, errored := runner.Tally(outcomes)
	logger.Info().
		Int("passed", passed).
		Int("failed", failed).
		Int("errored", errored).
		Msg("run finished")

	if runner.AnyFailed(outcomes) {
		return 1
	}
	return 0
}
