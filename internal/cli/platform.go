package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ZebulonRouseFrantzich/driverup/internal/platform"
)

func cmdPlatform(logger **slog.Logger, deps *runtimeDeps) *cli.Command {
	return &cli.Command{
		Name:  "platform",
		Usage: "Detect this host and suggest a PLATFORM tag",
		Action: func(ctx context.Context, c *cli.Command) error {
			info, err := deps.detector.Detect(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to detect platform")
			}
			(*logger).Debug("Detected platform",
				slog.String("os", info.OS),
				slog.String("arch", info.Arch),
				slog.String("kernel_arch", info.KernelArch),
				slog.String("platform", info.Platform),
				slog.String("version", info.Version),
			)

			w := c.Root().Writer
			fmt.Fprintf(w, "OS:   %s %s\n", info.OS, info.Version)
			if info.Platform != "" {
				fmt.Fprintf(w, "Host: %s\n", info.Platform)
			}
			fmt.Fprintf(w, "Arch: %s (kernel %s)\n", info.Arch, info.KernelArch)

			tag, err := platform.DriverTag(info)
			if err != nil {
				fmt.Fprintf(w, "No chromedriver build is published for this host. Known platforms: %v\n", platform.KnownTags)
				return nil
			}
			fmt.Fprintf(w, "PLATFORM=%s\n", tag)
			return nil
		},
	}
}
