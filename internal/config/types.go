package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrMissingSetting is returned by Resolve when a required setting is empty.
	ErrMissingSetting = errors.New("required setting is missing")
	// ErrInvalidSetting is returned when a setting has an unusable value.
	ErrInvalidSetting = errors.New("invalid setting")
)

// Config holds every setting driverup needs for one invocation.
// Build it once with Resolve and pass it by value; nothing mutates it later.
type Config struct {
	// ChromePath is the installed browser executable whose version is matched
	ChromePath string
	// Platform is the Chrome for Testing platform tag, used verbatim
	Platform string
	// OutputDir receives the archive and the extracted driver folder
	OutputDir string

	ReleaseBaseURL  string
	DownloadBaseURL string
	ReleaseTimeout  time.Duration
	DownloadTimeout time.Duration
}

// Resolve fills defaults and validates required settings. The receiver is
// left untouched; the resolved copy is returned.
func (c Config) Resolve() (Config, error) {
	c.ChromePath = strings.TrimSpace(c.ChromePath)
	c.Platform = strings.TrimSpace(c.Platform)

	var missing []string
	if c.ChromePath == "" {
		missing = append(missing, EnvChromePath)
	}
	if c.Platform == "" {
		missing = append(missing, EnvPlatform)
	}
	if len(missing) > 0 {
		return Config{}, goerr.Wrap(ErrMissingSetting, "configuration is incomplete",
			goerr.V("missing", strings.Join(missing, ", ")))
	}

	if c.OutputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, goerr.Wrap(err, "failed to resolve working directory")
		}
		c.OutputDir = wd
	}

	if c.ReleaseBaseURL == "" {
		c.ReleaseBaseURL = DefaultReleaseBaseURL
	}
	if c.DownloadBaseURL == "" {
		c.DownloadBaseURL = DefaultDownloadBaseURL
	}
	c.ReleaseBaseURL = strings.TrimRight(c.ReleaseBaseURL, "/")
	c.DownloadBaseURL = strings.TrimRight(c.DownloadBaseURL, "/")

	if c.ReleaseTimeout <= 0 {
		c.ReleaseTimeout = DefaultReleaseTimeout
	}
	if c.DownloadTimeout <= 0 {
		c.DownloadTimeout = DefaultDownloadTimeout
	}

	return c, nil
}

// DriverDir returns the folder the archive unpacks into.
func (c Config) DriverDir() string {
	return filepath.Join(c.OutputDir, driverDirPrefix+c.Platform)
}

// ArchiveName returns the file name of the downloaded archive.
func (c Config) ArchiveName() string {
	return driverDirPrefix + c.Platform + archiveExt
}

// ArchivePath returns where the downloaded archive is written.
func (c Config) ArchivePath() string {
	return filepath.Join(c.OutputDir, c.ArchiveName())
}

// ExecutableName returns the driver executable's file name for the platform.
func (c Config) ExecutableName() string {
	if IsWindowsTag(c.Platform) {
		return driverExecutable + ".exe"
	}
	return driverExecutable
}

// ExecutablePath returns the expected driver executable. Its presence marks
// a completed install.
func (c Config) ExecutablePath() string {
	return filepath.Join(c.DriverDir(), c.ExecutableName())
}

// IsWindowsTag reports whether a platform tag names a Windows build.
func IsWindowsTag(tag string) bool {
	return strings.HasPrefix(tag, "win")
}
