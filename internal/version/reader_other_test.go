//go:build !windows

package version

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestParseVersionOutput(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{name: "google chrome", out: "Google Chrome 123.0.6312.58 \n", want: "123.0.6312.58"},
		{name: "chromium", out: "Chromium 120.0.6099.224 built on Debian 12.4\n", want: "120.0.6099.224"},
		{name: "chrome for testing", out: "Google Chrome for Testing 126.0.6478.126", want: "126.0.6478.126"},
		{name: "first line only", out: "Google Chrome\n1.2.3\n", wantErr: true},
		{name: "no version", out: "hello", wantErr: true},
		{name: "empty", out: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersionOutput(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseVersionOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecReader(t *testing.T) {
	script := filepath.Join(t.TempDir(), "google-chrome")
	body := "#!/bin/sh\necho 'Google Chrome 123.0.6312.58'\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	got, err := Lookup(context.Background(), NewReader(), script)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "123.0.6312.58" {
		t.Errorf("version = %q, want %q", got, "123.0.6312.58")
	}
}

func TestExecReaderFailure(t *testing.T) {
	script := filepath.Join(t.TempDir(), "broken")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	if _, err := Lookup(context.Background(), NewReader(), script); err == nil {
		t.Fatal("expected error from failing executable")
	}
}
