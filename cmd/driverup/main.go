package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ZebulonRouseFrantzich/driverup/internal/cli"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	// Settings already exported in the environment win over .env
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Version = Version
	err := cli.Run(ctx, os.Args)
	stop()
	os.Exit(cli.ExitCode(err))
}
