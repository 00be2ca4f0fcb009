package driver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDownloaderDownloadToFile(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
	}{
		{
			name:       "successful_download",
			statusCode: http.StatusOK,
			body:       "PK\x03\x04 archive bytes",
		},
		{
			name:       "404_not_found",
			statusCode: http.StatusNotFound,
			body:       "<Error><Code>NoSuchKey</Code></Error>",
			wantErr:    ErrDownloadFailed,
		},
		{
			name:       "500_server_error",
			statusCode: http.StatusInternalServerError,
			body:       "server error",
			wantErr:    ErrDownloadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("User-Agent") != DefaultUserAgent {
					t.Errorf("unexpected User-Agent: %s", r.Header.Get("User-Agent"))
				}
				w.WriteHeader(tt.statusCode)
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Errorf("failed to write response: %v", err)
				}
			}))
			defer server.Close()

			// destination directory does not exist yet
			destDir := filepath.Join(t.TempDir(), "nested", "out")
			destPath := filepath.Join(destDir, "chromedriver-win64.zip")

			downloader := NewDownloader(5*time.Second, discardLogger())
			err := downloader.DownloadToFile(context.Background(), server.URL, destPath)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if _, statErr := os.Stat(destPath); !os.IsNotExist(statErr) {
					t.Error("no file must be written on a failed download")
				}
				if _, statErr := os.Stat(destPath + ".tmp"); !os.IsNotExist(statErr) {
					t.Error("temp file left behind")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			content, err := os.ReadFile(destPath)
			if err != nil {
				t.Fatalf("failed to read downloaded file: %v", err)
			}
			if string(content) != tt.body {
				t.Errorf("content mismatch:\ngot:  %q\nwant: %q", string(content), tt.body)
			}
		})
	}
}

func TestDownloaderNoRetry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	downloader := NewDownloader(5*time.Second, discardLogger())
	err := downloader.DownloadToFile(context.Background(), server.URL, filepath.Join(t.TempDir(), "f.zip"))
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if attempts != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", attempts)
	}
}

func TestDownloaderTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	downloader := NewDownloader(20*time.Millisecond, discardLogger())
	destPath := filepath.Join(t.TempDir(), "f.zip")
	err := downloader.DownloadToFile(context.Background(), server.URL, destPath)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if errors.Is(err, ErrDownloadFailed) {
		t.Errorf("timeout should not be reported as a status failure: %v", err)
	}
	if _, statErr := os.Stat(destPath); !os.IsNotExist(statErr) {
		t.Error("no file must be written on timeout")
	}
}

func TestDownloaderContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	downloader := NewDownloader(5*time.Second, discardLogger())
	err := downloader.DownloadToFile(ctx, server.URL, filepath.Join(t.TempDir(), "f.zip"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestDownloaderDownloadDriver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("zip"))
	}))
	defer server.Close()

	info, err := constructDownloadInfo(server.URL, "123.0.6312.86", "win64")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	destPath := filepath.Join(t.TempDir(), "drivers", info.Filename)
	path, err := NewDownloader(5*time.Second, discardLogger()).DownloadDriver(context.Background(), info, destPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != destPath {
		t.Errorf("path = %q, want %q", path, destPath)
	}
	if content, err := os.ReadFile(destPath); err != nil || string(content) != "zip" {
		t.Errorf("content = %q, err = %v, want %q", content, err, "zip")
	}

	if _, err := NewDownloader(time.Second, nil).DownloadDriver(context.Background(), nil, destPath); err == nil {
		t.Error("expected error for nil info")
	}
}

func TestDownloadToFileTooManyRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+r.URL.Path, http.StatusFound)
	}))
	defer server.Close()

	destPath := filepath.Join(t.TempDir(), "out", "chromedriver-linux64.zip")
	err := NewDownloader(5*time.Second, discardLogger()).DownloadToFile(context.Background(), server.URL+"/loop.zip", destPath)
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !strings.Contains(err.Error(), "too many redirects") {
		t.Errorf("error = %v, want too many redirects", err)
	}
	if _, err := os.Stat(filepath.Dir(destPath)); !os.IsNotExist(err) {
		t.Error("destination directory must not be created")
	}
}
