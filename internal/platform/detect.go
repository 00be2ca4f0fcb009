package platform

import (
	"context"
	"runtime"

	"github.com/m-mizutani/goerr/v2"
	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// OS and architecture come from the runtime; gopsutil adds the kernel
// architecture and distribution details.
//
// If gopsutil fails, the host fields stay empty and detection still
// succeeds, so a tag can be suggested from the runtime alone.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:   runtime.GOOS,
		Arch: normalizeArch(runtime.GOARCH),
	}

	stat, err := host.InfoWithContext(ctx)
	if err != nil {
		// Check if context was cancelled - this is a hard failure
		if ctx.Err() != nil {
			return nil, goerr.Wrap(ctx.Err(), "platform detection cancelled")
		}
		return info, nil
	}

	info.KernelArch = normalizePlatform(stat.KernelArch)
	info.Version = normalizePlatform(stat.PlatformVersion)
	if info.IsLinux() {
		info.Platform = normalizePlatform(stat.Platform)
	} else {
		info.Platform = stat.Platform
	}

	return info, nil
}
