package driver

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// constructDownloadInfo builds the archive URL for a driver version.
// Pattern: {base}/{version}/{platform}/chromedriver-{platform}.zip
func constructDownloadInfo(baseURL, version, platform string) (*DownloadInfo, error) {
	if version == "" {
		return nil, goerr.New("driver version is required")
	}
	if platform == "" {
		return nil, goerr.New("platform is required")
	}

	filename := fmt.Sprintf("chromedriver-%s.zip", platform)

	return &DownloadInfo{
		Version:  version,
		Platform: platform,
		URL:      fmt.Sprintf("%s/%s/%s/%s", strings.TrimRight(baseURL, "/"), version, platform, filename),
		Filename: filename,
	}, nil
}

// latestReleaseURL builds the release lookup URL for a major version.
// Pattern: {base}/LATEST_RELEASE_{major}
func latestReleaseURL(baseURL, major string) string {
	return fmt.Sprintf("%s/LATEST_RELEASE_%s", strings.TrimRight(baseURL, "/"), major)
}
