// Package version reads the installed browser's version and derives the
// major release line used to pick a matching driver.
package version

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ErrFileNotFound is returned when the inspected path is not an existing file.
var ErrFileNotFound = errors.New("file not found")

// Reader reads the version metadata embedded in an executable.
type Reader interface {
	FileVersion(ctx context.Context, path string) (string, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(ctx context.Context, path string) (string, error)

// FileVersion calls f.
func (f ReaderFunc) FileVersion(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// Lookup returns the trimmed version of the file at path. A missing path, or
// one naming a directory, fails with ErrFileNotFound before the reader runs.
func Lookup(ctx context.Context, r Reader, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", goerr.Wrap(ErrFileNotFound, path+" is not found", goerr.V("path", path))
		}
		return "", goerr.Wrap(err, "failed to stat file", goerr.V("path", path))
	}
	if info.IsDir() {
		return "", goerr.Wrap(ErrFileNotFound, path+" is a directory", goerr.V("path", path))
	}

	v, err := r.FileVersion(ctx, path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read file version", goerr.V("path", path))
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return "", goerr.New("file has no version information", goerr.V("path", path))
	}
	return v, nil
}

// Major returns the leading dot-delimited segment of v.
func Major(v string) string {
	major, _, _ := strings.Cut(strings.TrimSpace(v), ".")
	return major
}

// Inspector resolves the browser version through a Reader.
type Inspector struct {
	reader Reader
	logger *slog.Logger
}

// NewInspector creates an inspector. A nil reader selects the reader for the
// current operating system.
func NewInspector(r Reader, logger *slog.Logger) *Inspector {
	if r == nil {
		r = NewReader()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Inspector{reader: r, logger: logger}
}

// BrowserVersion returns the full version of the browser at path.
func (i *Inspector) BrowserVersion(ctx context.Context, path string) (string, error) {
	i.logger.Info("Get file version", slog.String("path", path))

	v, err := Lookup(ctx, i.reader, path)
	if err != nil {
		return "", err
	}

	i.logger.Info("Chrome version", slog.String("path", path), slog.String("version", v))
	return v, nil
}

// BrowserMajor returns the full browser version and its major segment.
func (i *Inspector) BrowserMajor(ctx context.Context, path string) (full, major string, err error) {
	full, err = i.BrowserVersion(ctx, path)
	if err != nil {
		return "", "", err
	}
	return full, Major(full), nil
}
