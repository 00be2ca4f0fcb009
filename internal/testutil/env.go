// Package testutil provides utilities for testing driverup in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv holds the isolated paths created by SetupTestEnv.
type TestEnv struct {
	Root           string
	ChromePath     string
	DownloadFolder string
}

// SetupTestEnv points every driverup setting at a per-test temp directory.
// This ensures tests never interfere with:
// - A chromedriver the operator already downloaded
// - Settings exported in the developer's shell or .env
//
// CHROME_PATH names a file that does not exist yet; create it when the test
// needs a browser. The optional settings are cleared so defaults apply.
func SetupTestEnv(t *testing.T, platformTag string) *TestEnv {
	t.Helper()

	// Create temp directory (auto-cleaned by testing framework)
	tmpDir := t.TempDir()

	env := &TestEnv{
		Root:           tmpDir,
		ChromePath:     filepath.Join(tmpDir, "browser", "chrome.exe"),
		DownloadFolder: filepath.Join(tmpDir, "drivers"),
	}

	t.Setenv("CHROME_PATH", env.ChromePath)
	t.Setenv("PLATFORM", platformTag)
	t.Setenv("DOWNLOAD_FOLDER", env.DownloadFolder)

	for _, key := range []string{
		"DRIVERUP_RELEASE_URL",
		"DRIVERUP_DOWNLOAD_URL",
		"DRIVERUP_LOG_LEVEL",
		"DRIVERUP_LOG_JSON",
	} {
		t.Setenv(key, "")
	}

	if err := os.MkdirAll(filepath.Dir(env.ChromePath), 0o750); err != nil {
		t.Fatalf("failed to create test directory %s: %v", filepath.Dir(env.ChromePath), err)
	}

	return env
}

// WriteBrowser creates the fake browser executable at ChromePath.
func (e *TestEnv) WriteBrowser(t *testing.T) {
	t.Helper()
	if err := os.WriteFile(e.ChromePath, []byte("MZ"), 0o755); err != nil {
		t.Fatalf("failed to write fake browser: %v", err)
	}
}
