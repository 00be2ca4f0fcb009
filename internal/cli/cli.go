// Package cli wires driverup's commands, configuration and logging.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ZebulonRouseFrantzich/driverup/internal/config"
	"github.com/ZebulonRouseFrantzich/driverup/internal/platform"
	"github.com/ZebulonRouseFrantzich/driverup/internal/version"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

// runtimeDeps holds the collaborators commands use. Tests replace them.
type runtimeDeps struct {
	out      io.Writer
	reader   version.Reader
	detector platform.Detector
}

// Option customizes Run
type Option func(*runtimeDeps)

// WithWriter redirects command output and logs
func WithWriter(w io.Writer) Option {
	return func(d *runtimeDeps) {
		d.out = w
	}
}

// WithVersionReader replaces the browser version reader
func WithVersionReader(r version.Reader) Option {
	return func(d *runtimeDeps) {
		d.reader = r
	}
}

// WithDetector replaces the host platform detector
func WithDetector(det platform.Detector) Option {
	return func(d *runtimeDeps) {
		d.detector = det
	}
}

// Run runs the CLI application. The returned error has already been logged;
// pass it to ExitCode for the process status.
func Run(ctx context.Context, args []string, opts ...Option) error {
	deps := &runtimeDeps{
		out:      os.Stdout,
		detector: platform.NewDetector(),
	}
	for _, opt := range opts {
		opt(deps)
	}

	var (
		loggerCfg config.Logger
		driverCfg config.Config
		logger    *slog.Logger
	)
	loggerCfg.Writer = deps.out

	app := &cli.Command{
		Name:           "driverup",
		Usage:          "Keep a chromedriver matching the installed Chrome",
		Version:        Version,
		Writer:         deps.out,
		DefaultCommand: "sync",
		Flags:          append(loggerCfg.Flags(), driverCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			return ctx, err
		},
		Commands: []*cli.Command{
			cmdSync(&driverCfg, &logger, deps),
			cmdStatus(&driverCfg, &logger, deps),
			cmdPlatform(&logger, deps),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(deps.out, nil))
		}
		if errors.Is(err, version.ErrFileNotFound) {
			logger.Error(err.Error())
		} else {
			logger.Error("An error occurred: " + err.Error())
		}
		// goerr values and the stack trace
		logger.Debug("Error details", slog.Any("error", err))
		return err
	}

	return nil
}
