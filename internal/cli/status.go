package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ZebulonRouseFrantzich/driverup/internal/config"
)

func cmdStatus(driverCfg *config.Config, logger **slog.Logger, deps *runtimeDeps) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the installed browser, the latest matching driver and whether it is present",
		Action: func(ctx context.Context, c *cli.Command) error {
			mgr, err := newManager(*driverCfg, *logger, deps)
			if err != nil {
				return err
			}

			status, err := mgr.Status(ctx)
			if err != nil {
				return err
			}

			installed := "missing"
			if status.Installed {
				installed = "present"
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "Chrome:       %s (major %s)\n", status.BrowserVersion, status.BrowserMajor)
			fmt.Fprintf(w, "Latest driver: %s\n", status.LatestDriver)
			fmt.Fprintf(w, "Driver:       %s (%s)\n", status.ExecutablePath, installed)
			return nil
		},
	}
}
