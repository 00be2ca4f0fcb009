package driver

import (
	"time"
)

// DownloadInfo contains what is needed to fetch one driver archive
type DownloadInfo struct {
	Version  string
	Platform string
	URL      string
	// Filename is the last path segment of URL
	Filename string
}

// Result describes the outcome of Manager.Ensure
type Result struct {
	// Skipped is true when the executable was already present
	Skipped        bool
	BrowserVersion string
	DriverVersion  string
	ExecutablePath string
	Duration       time.Duration
}

// Status is a read-only report of the local install and the remote release
type Status struct {
	Installed      bool
	ExecutablePath string
	BrowserVersion string
	BrowserMajor   string
	LatestDriver   string
}
