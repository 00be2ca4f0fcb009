package driver

import "errors"

var (
	// ErrReleaseLookup means the release endpoint answered with a non-200 status.
	ErrReleaseLookup = errors.New("release lookup failed")
	// ErrInvalidRelease means the release endpoint answered with something
	// that is not a driver version for the requested major line.
	ErrInvalidRelease = errors.New("invalid release version")
	// ErrDownloadFailed means the archive download answered with a non-200 status.
	ErrDownloadFailed = errors.New("download chrome driver failed")
	// ErrArchiveFormat means the downloaded archive is not a readable zip.
	ErrArchiveFormat = errors.New("invalid archive format")
)
