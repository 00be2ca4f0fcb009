//go:build !windows

package version

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var dottedVersion = regexp.MustCompile(`\d+(?:\.\d+)+`)

// execReader runs "{path} --version", which Chrome answers with a line such
// as "Google Chrome 123.0.6312.58".
type execReader struct{}

// NewReader returns the Reader for the current operating system.
func NewReader() Reader {
	return execReader{}
}

func (execReader) FileVersion(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", goerr.Wrap(err, "failed to run --version", goerr.V("path", path))
	}
	return ParseVersionOutput(string(out))
}

// ParseVersionOutput extracts the first dotted numeric token from a
// "--version" style banner.
func ParseVersionOutput(out string) (string, error) {
	line := strings.TrimSpace(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	v := dottedVersion.FindString(line)
	if v == "" {
		return "", goerr.New("no version found in output", goerr.V("output", line))
	}
	return v, nil
}
