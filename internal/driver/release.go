package driver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// maxReleaseBody caps the release response; a version string is a few bytes
const maxReleaseBody = 1 << 10

var releaseVersion = regexp.MustCompile(`^\d+(\.\d+)+$`)

// Resolver looks up the latest driver version for a browser major version
type Resolver struct {
	client    *http.Client
	baseURL   string
	userAgent string
	logger    *slog.Logger
}

// NewResolver creates a resolver against baseURL. Each request is bounded by
// timeout.
func NewResolver(baseURL string, timeout time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
		logger:    logger,
	}
}

// LatestVersion returns the trimmed LATEST_RELEASE_{major} body. The status
// must be 200 and the body must be a dotted version on the same major line.
func (r *Resolver) LatestVersion(ctx context.Context, major string) (string, error) {
	if major == "" {
		return "", goerr.Wrap(ErrInvalidRelease, "major version is empty")
	}

	url := latestReleaseURL(r.baseURL, major)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create release request", goerr.V("url", url))
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to request latest release", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", goerr.Wrap(ErrReleaseLookup, "unexpected status code",
			goerr.V("url", url), goerr.V("status", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReleaseBody+1))
	if err != nil {
		return "", goerr.Wrap(err, "failed to read release response", goerr.V("url", url))
	}
	if len(body) > maxReleaseBody {
		return "", goerr.Wrap(ErrInvalidRelease, "release response too large", goerr.V("url", url))
	}

	latest := strings.TrimSpace(string(body))
	if !releaseVersion.MatchString(latest) {
		return "", goerr.Wrap(ErrInvalidRelease, "response is not a version",
			goerr.V("url", url), goerr.V("body", latest))
	}
	if !strings.HasPrefix(latest, major+".") {
		return "", goerr.Wrap(ErrInvalidRelease, "release belongs to another major version",
			goerr.V("major", major), goerr.V("version", latest))
	}

	r.logger.Info("Latest driver version", slog.String("major", major), slog.String("version", latest))
	return latest, nil
}
