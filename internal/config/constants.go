package config

import "time"

// Environment variables read at startup
const (
	EnvChromePath     = "CHROME_PATH"
	EnvPlatform       = "PLATFORM"
	EnvDownloadFolder = "DOWNLOAD_FOLDER"
	EnvReleaseURL     = "DRIVERUP_RELEASE_URL"
	EnvDownloadURL    = "DRIVERUP_DOWNLOAD_URL"
	EnvLogLevel       = "DRIVERUP_LOG_LEVEL"
	EnvLogJSON        = "DRIVERUP_LOG_JSON"
)

const (
	// DefaultReleaseBaseURL serves LATEST_RELEASE_{major} lookups
	DefaultReleaseBaseURL = "https://googlechromelabs.github.io/chrome-for-testing"
	// DefaultDownloadBaseURL serves {version}/{platform}/chromedriver-{platform}.zip
	DefaultDownloadBaseURL = "https://storage.googleapis.com/chrome-for-testing-public"

	// DefaultReleaseTimeout bounds the release lookup request
	DefaultReleaseTimeout = 10 * time.Second
	// DefaultDownloadTimeout bounds the archive download request
	DefaultDownloadTimeout = 300 * time.Second
)

const (
	driverDirPrefix  = "chromedriver-"
	driverExecutable = "chromedriver"
	archiveExt       = ".zip"
)
