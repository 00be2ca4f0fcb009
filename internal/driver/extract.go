package driver

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Extractor handles archive extraction
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a new extractor
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractZip extracts every entry of a .zip archive into destDir, keeping
// the archive's directory structure and entry permissions.
func (e *Extractor) ExtractZip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(err, "archive does not exist", goerr.V("path", archivePath))
		}
		return goerr.Wrap(fmt.Errorf("%w: %w", ErrArchiveFormat, err), "failed to open zip",
			goerr.V("path", archivePath))
	}
	defer reader.Close()

	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve destination directory", goerr.V("dir", destDir))
	}

	if err := os.MkdirAll(absDest, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create destination directory", goerr.V("dir", destDir))
	}

	for _, file := range reader.File {
		target := filepath.Join(absDest, filepath.FromSlash(file.Name))

		// Prevent path traversal
		if !withinDir(absDest, target) {
			return goerr.Wrap(ErrArchiveFormat, "illegal file path in archive", goerr.V("name", file.Name))
		}

		mode := file.Mode()
		switch {
		case mode.IsDir():
			if err := os.MkdirAll(target, 0o755); err != nil {
				return goerr.Wrap(err, "failed to create directory", goerr.V("dir", target))
			}

		case mode.IsRegular():
			if err := extractFile(file, target); err != nil {
				return err
			}

		default:
			e.logger.Debug("Skip non-regular zip entry", slog.String("name", file.Name), slog.String("mode", mode.String()))
		}
	}

	e.logger.Info("Unzip", slog.String("src", archivePath), slog.String("dest", destDir))
	return nil
}

// withinDir reports whether target is dir itself or below it. Both paths
// must be absolute and clean.
func withinDir(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}

// extractFile writes a single zip entry to target
func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create parent directory", goerr.V("path", target))
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(classify(err), "failed to open zip entry", goerr.V("name", file.Name))
	}
	defer rc.Close()

	perm := file.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return goerr.Wrap(err, "failed to create file", goerr.V("path", target))
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return goerr.Wrap(classify(err), "failed to write file", goerr.V("path", target))
	}

	if err := out.Close(); err != nil {
		return goerr.Wrap(err, "failed to close file", goerr.V("path", target))
	}
	return nil
}

// classify tags corrupt-entry errors from archive/zip with ErrArchiveFormat
func classify(err error) error {
	if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrAlgorithm) ||
		errors.Is(err, zip.ErrChecksum) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrArchiveFormat, err)
	}
	return err
}

// SetExecutable sets executable permissions on a file
func SetExecutable(path string) error {
	if err := os.Chmod(path, 0o755); err != nil {
		return goerr.Wrap(err, "failed to set executable permission", goerr.V("path", path))
	}
	return nil
}
