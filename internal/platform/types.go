// Package platform detects the host and maps it to a Chrome for Testing
// platform tag.
//
// The result is advisory. driverup always uses the tag the operator
// configured; detection only backs the "platform" command and a warning when
// the configured tag is not one the distribution publishes.
package platform

import "context"

// Chrome for Testing platform tags
const (
	TagLinux64  = "linux64"
	TagMacARM64 = "mac-arm64"
	TagMacX64   = "mac-x64"
	TagWin32    = "win32"
	TagWin64    = "win64"
)

// KnownTags lists the platform tags chromedriver is published for.
var KnownTags = []string{TagLinux64, TagMacARM64, TagMacX64, TagWin32, TagWin64}

// Info contains platform detection information.
type Info struct {
	OS         string // "linux", "darwin", "windows"
	Arch       string // normalized build architecture ("amd64", "arm64", "386")
	KernelArch string // machine architecture reported by the OS (e.g., "x86_64")
	Platform   string // OS distribution or product name (e.g., "ubuntu", "Microsoft Windows 11 Pro")
	Version    string // OS version (e.g., "22.04")
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
