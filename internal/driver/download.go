package driver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "driverup/1.0"
	// maxRedirects bounds redirect chains from the storage bucket
	maxRedirects = 10
)

// Downloader fetches a URL into a directory. It makes exactly one attempt.
type Downloader struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// NewDownloader creates a downloader whose requests are bounded by timeout
func NewDownloader(timeout time.Duration, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Downloader{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return goerr.New("too many redirects", goerr.V("url", req.URL.String()))
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
		logger:    logger,
	}
}

// DownloadDriver downloads the archive described by info to destPath and
// returns the written path.
func (d *Downloader) DownloadDriver(ctx context.Context, info *DownloadInfo, destPath string) (string, error) {
	if info == nil {
		return "", goerr.New("download info is nil")
	}

	if err := d.DownloadToFile(ctx, info.URL, destPath); err != nil {
		return "", err
	}

	d.logger.Info("Download driver completed",
		slog.String("version", info.Version),
		slog.String("path", destPath),
	)
	return destPath, nil
}

// DownloadToFile downloads url to destPath. The parent directory is created
// only once the server has answered 200, and the body lands in a temporary
// file that is renamed into place, so a failed download writes nothing.
func (d *Downloader) DownloadToFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create download request", goerr.V("url", url))
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to request driver archive", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.Wrap(ErrDownloadFailed, "unexpected status code",
			goerr.V("url", url), goerr.V("status", resp.StatusCode))
	}

	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create destination directory", goerr.V("dir", destDir))
	}

	tmpPath := destPath + ".tmp"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("path", tmpPath))
	}

	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	written, err := io.Copy(tmpFile, resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to write response body", goerr.V("url", url))
	}

	if err := tmpFile.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpPath))
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return goerr.Wrap(err, "failed to move archive into place", goerr.V("path", destPath))
	}

	cleanupNeeded = false
	d.logger.Debug("Wrote archive", slog.String("path", destPath), slog.Int64("bytes", written))
	return nil
}
