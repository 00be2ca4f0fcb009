package driver

import (
	"archive/zip"
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

type zipEntry struct {
	name    string
	content string
	mode    os.FileMode
}

// buildZip returns an in-memory zip archive. Names ending in "/" become
// directory entries.
func buildZip(t *testing.T, entries []zipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		header := &zip.FileHeader{
			Name:   e.name,
			Method: zip.Deflate,
		}
		mode := e.mode
		if mode == 0 {
			mode = 0o644
		}
		if e.name[len(e.name)-1] == '/' {
			header.Method = zip.Store
			mode = os.ModeDir | 0o755
		}
		header.SetMode(mode)

		w, err := zw.CreateHeader(header)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", e.name, err)
		}
		if _, err := w.Write([]byte(e.content)); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

// writeZip writes buildZip's output to a file in a fresh temp dir
func writeZip(t *testing.T, entries []zipEntry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.zip")
	if err := os.WriteFile(path, buildZip(t, entries), 0o644); err != nil {
		t.Fatalf("failed to write zip: %v", err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// driverArchive mirrors the layout of a Chrome for Testing chromedriver zip
func driverArchive(t *testing.T, platform, exeName string) []byte {
	t.Helper()
	dir := "chromedriver-" + platform + "/"
	return buildZip(t, []zipEntry{
		{name: dir},
		{name: dir + exeName, content: "driver-binary", mode: 0o755},
		{name: dir + "LICENSE.chromedriver", content: "license"},
		{name: dir + "THIRD_PARTY_NOTICES.chromedriver", content: "notices"},
	})
}
