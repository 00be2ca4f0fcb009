package platform

import (
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// normalizeArch converts GOARCH and uname-style values to GOARCH names.
// Unrecognized values are returned lowercased.
func normalizeArch(arch string) string {
	switch a := strings.ToLower(strings.TrimSpace(arch)); a {
	case "amd64", "x86_64", "x64":
		return "amd64"
	case "arm64", "aarch64":
		return "arm64"
	case "386", "i386", "i686", "x86":
		return "386"
	default:
		return a
	}
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// DriverTag suggests the Chrome for Testing platform tag for a host.
// The machine architecture wins over the build architecture, so a 32-bit
// build on 64-bit Windows still gets win64.
func DriverTag(info *Info) (string, error) {
	if info == nil {
		return "", goerr.New("platform info is required")
	}

	arch := info.Arch
	if info.KernelArch != "" {
		arch = normalizeArch(info.KernelArch)
	}

	switch {
	case info.IsWindows():
		switch arch {
		case "amd64", "arm64":
			return TagWin64, nil
		case "386":
			return TagWin32, nil
		}
	case info.IsMacOS():
		switch arch {
		case "arm64":
			return TagMacARM64, nil
		case "amd64":
			return TagMacX64, nil
		}
	case info.IsLinux():
		if arch == "amd64" {
			return TagLinux64, nil
		}
	}

	return "", goerr.New("no chromedriver build for this host",
		goerr.V("os", info.OS), goerr.V("arch", arch))
}

// IsKnownTag reports whether tag is a published Chrome for Testing platform.
func IsKnownTag(tag string) bool {
	return slices.Contains(KnownTags, tag)
}
