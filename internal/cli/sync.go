package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ZebulonRouseFrantzich/driverup/internal/config"
	"github.com/ZebulonRouseFrantzich/driverup/internal/driver"
	"github.com/ZebulonRouseFrantzich/driverup/internal/platform"
)

func cmdSync(driverCfg *config.Config, logger **slog.Logger, deps *runtimeDeps) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Download and unpack chromedriver unless it is already present",
		Action: func(ctx context.Context, c *cli.Command) error {
			mgr, err := newManager(*driverCfg, *logger, deps)
			if err != nil {
				return err
			}

			result, err := mgr.Ensure(ctx)
			if err != nil {
				return err
			}

			if !result.Skipped {
				(*logger).Info("Chrome driver is ready",
					slog.String("path", result.ExecutablePath),
					slog.String("driver_version", result.DriverVersion),
					slog.Duration("elapsed", result.Duration),
				)
			}
			return nil
		},
	}
}

// newManager resolves the configuration and builds a driver manager. It runs
// before anything touches the network or the filesystem.
func newManager(driverCfg config.Config, logger *slog.Logger, deps *runtimeDeps) (*driver.Manager, error) {
	cfg, err := driverCfg.Resolve()
	if err != nil {
		return nil, err
	}

	if !platform.IsKnownTag(cfg.Platform) {
		logger.Warn("Platform tag is not a known Chrome for Testing platform",
			slog.String("platform", cfg.Platform),
			slog.String("known", strings.Join(platform.KnownTags, ", ")),
		)
	}

	opts := []driver.Option{driver.WithLogger(logger)}
	if deps.reader != nil {
		opts = append(opts, driver.WithVersionReader(deps.reader))
	}
	return driver.NewManager(cfg, opts...), nil
}
