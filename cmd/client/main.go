package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/timesheets/internal/buildinfo"
	"github.com/dmitrijs2005/timesheets/internal/client/cli"
	"github.com/dmitrijs2005/timesheets/internal/client/config"
	"github.com/dmitrijs2005/timesheets/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	os.Exit(run(cfg, logger, os.Stderr))
}

// run owns every deferred cleanup so that main can exit with a status code
// only after they have run.
func run(cfg *config.Config, logger logging.Logger, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(stderr, "timesheets:", err)
		return 1
	}

	app.Run(ctx)
	return 0
}
