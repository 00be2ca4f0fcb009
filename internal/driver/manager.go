package driver

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ZebulonRouseFrantzich/driverup/internal/config"
	"github.com/ZebulonRouseFrantzich/driverup/internal/version"
)

// Manager orchestrates version lookup, download and installation of the driver
type Manager struct {
	cfg        config.Config
	logger     *slog.Logger
	reader     version.Reader
	inspector  *version.Inspector
	resolver   *Resolver
	downloader *Downloader
	extractor  *Extractor
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger used by the manager and its components
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithVersionReader replaces the operating system's file version reader
func WithVersionReader(r version.Reader) Option {
	return func(m *Manager) {
		m.reader = r
	}
}

// NewManager creates a manager for a resolved configuration
func NewManager(cfg config.Config, opts ...Option) *Manager {
	m := &Manager{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.inspector = version.NewInspector(m.reader, m.logger)
	m.resolver = NewResolver(cfg.ReleaseBaseURL, cfg.ReleaseTimeout, m.logger)
	m.downloader = NewDownloader(cfg.DownloadTimeout, m.logger)
	m.extractor = NewExtractor(m.logger)
	return m
}

// IsInstalled reports whether the expected driver executable exists
func (m *Manager) IsInstalled() (bool, error) {
	info, err := os.Stat(m.cfg.ExecutablePath())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to stat driver executable",
			goerr.V("path", m.cfg.ExecutablePath()))
	}
	return info.Mode().IsRegular(), nil
}

// Ensure installs the driver unless its executable is already present.
// The steps run in order and the first failure is returned as is; nothing
// written by earlier steps is rolled back.
func (m *Manager) Ensure(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	exePath := m.cfg.ExecutablePath()

	installed, err := m.IsInstalled()
	if err != nil {
		return nil, err
	}
	if installed {
		m.logger.Info("Chrome driver already available", slog.String("path", exePath))
		return &Result{
			Skipped:        true,
			ExecutablePath: exePath,
			Duration:       time.Since(startTime),
		}, nil
	}

	browserVersion, major, err := m.inspector.BrowserMajor(ctx, m.cfg.ChromePath)
	if err != nil {
		return nil, err
	}

	driverVersion, err := m.resolver.LatestVersion(ctx, major)
	if err != nil {
		return nil, err
	}

	info, err := constructDownloadInfo(m.cfg.DownloadBaseURL, driverVersion, m.cfg.Platform)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to construct download info")
	}

	archivePath, err := m.downloader.DownloadDriver(ctx, info, m.cfg.ArchivePath())
	if err != nil {
		return nil, err
	}

	if err := m.extractor.ExtractZip(archivePath, m.cfg.OutputDir); err != nil {
		return nil, err
	}

	if err := os.Remove(archivePath); err != nil {
		return nil, goerr.Wrap(err, "failed to remove archive", goerr.V("path", archivePath))
	}

	installed, err = m.IsInstalled()
	if err != nil {
		return nil, err
	}
	if !installed {
		// The next run will download again
		m.logger.Warn("Archive did not contain the expected executable", slog.String("path", exePath))
	} else if !config.IsWindowsTag(m.cfg.Platform) {
		if err := SetExecutable(exePath); err != nil {
			return nil, goerr.Wrap(err, "failed to mark driver executable", goerr.V("path", exePath))
		}
	}

	return &Result{
		BrowserVersion: browserVersion,
		DriverVersion:  driverVersion,
		ExecutablePath: exePath,
		Duration:       time.Since(startTime),
	}, nil
}

// Status reports the local install state and the latest driver for the
// installed browser without downloading anything.
func (m *Manager) Status(ctx context.Context) (*Status, error) {
	installed, err := m.IsInstalled()
	if err != nil {
		return nil, err
	}

	browserVersion, major, err := m.inspector.BrowserMajor(ctx, m.cfg.ChromePath)
	if err != nil {
		return nil, err
	}

	latest, err := m.resolver.LatestVersion(ctx, major)
	if err != nil {
		return nil, err
	}

	return &Status{
		Installed:      installed,
		ExecutablePath: m.cfg.ExecutablePath(),
		BrowserVersion: browserVersion,
		BrowserMajor:   major,
		LatestDriver:   latest,
	}, nil
}
