package config

import "github.com/urfave/cli/v3"

// Flags binds the driver settings to CLI flags. Each flag falls back to its
// environment variable, which is how the tool is normally configured.
func (c *Config) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "chrome-path",
			Usage:       "Path to the installed Chrome executable",
			Destination: &c.ChromePath,
			Sources:     cli.EnvVars(EnvChromePath),
		},
		&cli.StringFlag{
			Name:        "platform",
			Usage:       "Chrome for Testing platform tag (linux64, mac-arm64, mac-x64, win32, win64)",
			Destination: &c.Platform,
			Sources:     cli.EnvVars(EnvPlatform),
		},
		&cli.StringFlag{
			Name:        "download-folder",
			Usage:       "Directory that receives the driver (default: working directory)",
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars(EnvDownloadFolder),
		},
		&cli.StringFlag{
			Name:        "release-url",
			Usage:       "Base URL of the LATEST_RELEASE endpoint",
			Value:       DefaultReleaseBaseURL,
			Hidden:      true,
			Destination: &c.ReleaseBaseURL,
			Sources:     cli.EnvVars(EnvReleaseURL),
		},
		&cli.StringFlag{
			Name:        "download-url",
			Usage:       "Base URL of the driver archive storage",
			Value:       DefaultDownloadBaseURL,
			Hidden:      true,
			Destination: &c.DownloadBaseURL,
			Sources:     cli.EnvVars(EnvDownloadURL),
		},
	}
}
