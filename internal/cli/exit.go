package cli

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/ZebulonRouseFrantzich/driverup/internal/config"
	"github.com/ZebulonRouseFrantzich/driverup/internal/driver"
	"github.com/ZebulonRouseFrantzich/driverup/internal/version"
)

// Process exit codes, one per error kind
const (
	ExitOK           = 0
	ExitError        = 1
	ExitConfig       = 2
	ExitFileNotFound = 3
	ExitNetwork      = 4
	ExitRelease      = 5
	ExitDownload     = 6
	ExitArchive      = 7
)

// ExitCode maps an error returned by Run to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrMissingSetting), errors.Is(err, config.ErrInvalidSetting):
		return ExitConfig
	case errors.Is(err, version.ErrFileNotFound):
		return ExitFileNotFound
	case errors.Is(err, driver.ErrReleaseLookup), errors.Is(err, driver.ErrInvalidRelease):
		return ExitRelease
	case errors.Is(err, driver.ErrDownloadFailed):
		return ExitDownload
	case errors.Is(err, driver.ErrArchiveFormat):
		return ExitArchive
	case isNetworkError(err):
		return ExitNetwork
	default:
		return ExitError
	}
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
