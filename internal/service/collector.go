// Package service provides the probe pipeline: collection, probing,
// threshold evaluation and orchestration.
package service

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sysprobe/internal/model"
)

// UsageFunc reports filesystem usage for a path.
type UsageFunc func(ctx context.Context, path string) (*disk.UsageStat, error)

// HostInfoFunc reports host identity.
type HostInfoFunc func(ctx context.Context) (*host.InfoStat, error)

// Collector gathers OS identity and root filesystem capacity.
type Collector struct {
	rootPath string
	usage    UsageFunc
	hostInfo HostInfoFunc
	logger   zerolog.Logger
}

// CollectorOption is a functional option for configuring a Collector.
type CollectorOption func(*Collector)

// WithRootPath overrides the filesystem path that is measured.
func WithRootPath(path string) CollectorOption {
	return func(c *Collector) {
		c.rootPath = path
	}
}

// WithUsageFunc overrides the filesystem usage source.
func WithUsageFunc(fn UsageFunc) CollectorOption {
	return func(c *Collector) {
		c.usage = fn
	}
}

// WithHostInfoFunc overrides the host identity source.
func WithHostInfoFunc(fn HostInfoFunc) CollectorOption {
	return func(c *Collector) {
		c.hostInfo = fn
	}
}

// NewCollector creates a Collector backed by gopsutil.
func NewCollector(logger zerolog.Logger, opts ...CollectorOption) *Collector {
	c := &Collector{
		rootPath: DefaultRootPath(),
		usage:    disk.UsageWithContext,
		hostInfo: host.InfoWithContext,
		logger:   logger.With().Str("component", "collector").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// DefaultRootPath returns the root of the OS filesystem: the system drive on
// Windows, "/" elsewhere.
func DefaultRootPath() string {
	if runtime.GOOS != "windows" {
		return "/"
	}
	drive := os.Getenv("SystemDrive")
	if drive == "" {
		drive = "C:"
	}
	return drive + `\`
}

// RootPath returns the measured filesystem path.
func (c *Collector) RootPath() string {
	return c.rootPath
}

// Collect queries host identity and disk capacity.
// A failed capacity query is returned as an error; a failed identity query
// falls back to the runtime OS name.
func (c *Collector) Collect(ctx context.Context) (*model.OSIdentity, *model.DiskInfo, error) {
	c.logger.Debug().Str("path", c.rootPath).Msg("collecting host metrics")

	identity := c.collectIdentity(ctx)

	usage, err := c.usage(ctx, c.rootPath)
	if err != nil {
		return identity, nil, fmt.Errorf("failed to query disk usage for %s: %w", c.rootPath, err)
	}
	if usage == nil {
		return identity, nil, fmt.Errorf("no disk usage reported for %s", c.rootPath)
	}

	diskInfo, err := model.NewDiskInfo(c.rootPath, usage.Total, usage.Free)
	if err != nil {
		return identity, nil, fmt.Errorf("invalid disk usage for %s: %w", c.rootPath, err)
	}

	c.logger.Info().
		Str("system", identity.System).
		Str("release", identity.Release).
		Float64("total_gb", diskInfo.TotalGB).
		Float64("free_gb", diskInfo.FreeGB).
		Float64("free_percent", diskInfo.FreePercent).
		Msg("host metrics collected")

	return identity, diskInfo, nil
}

func (c *Collector) collectIdentity(ctx context.Context) *model.OSIdentity {
	identity := &model.OSIdentity{
		System:    TitleOS(runtime.GOOS),
		GoVersion: runtime.Version(),
	}

	info, err := c.hostInfo(ctx)
	if err != nil || info == nil {
		c.logger.Warn().Err(err).Msg("failed to query host info, using runtime OS name")
		return identity
	}

	if info.OS != "" {
		identity.System = TitleOS(info.OS)
	}
	identity.Release = info.KernelVersion
	if identity.Release == "" {
		identity.Release = info.PlatformVersion
	}

	return identity
}

// TitleOS renders an OS family name the way it is reported, e.g. linux -> Linux.
func TitleOS(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
