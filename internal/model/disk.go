// Package model provides data models for the probe.
package model

import (
	"errors"
	"math"
)

// bytesPerGB is the divisor used for the *_gb views (GiB).
const bytesPerGB = 1024 * 1024 * 1024

// ErrZeroCapacity is returned when a filesystem reports no capacity.
var ErrZeroCapacity = errors.New("filesystem reports zero total capacity")

// OSIdentity describes the host operating system and the probe runtime.
type OSIdentity struct {
	System    string `json:"system" yaml:"system"`   // OS family, e.g. Linux, Windows, Darwin
	Release   string `json:"release" yaml:"release"` // Kernel release / version string
	GoVersion string `json:"go" yaml:"go"`           // Runtime version of the probe
}

// DiskInfo is a snapshot of filesystem capacity for one path.
type DiskInfo struct {
	Path       string `json:"-" yaml:"-"`
	TotalBytes uint64 `json:"-" yaml:"-"`
	UsedBytes  uint64 `json:"-" yaml:"-"`
	FreeBytes  uint64 `json:"-" yaml:"-"`

	TotalGB     float64 `json:"total_gb" yaml:"total_gb"`         // Total capacity (GiB, 2 decimals)
	UsedGB      float64 `json:"used_gb" yaml:"used_gb"`           // Used = total - free (GiB, 2 decimals)
	FreeGB      float64 `json:"free_gb" yaml:"free_gb"`           // Free space (GiB, 2 decimals)
	FreePercent float64 `json:"free_percent" yaml:"free_percent"` // free / total * 100 (2 decimals)
}

// NewDiskInfo derives a DiskInfo from the raw capacity figures.
// Free larger than total is clamped to total.
func NewDiskInfo(path string, total, free uint64) (*DiskInfo, error) {
	if total == 0 {
		return nil, ErrZeroCapacity
	}
	if free > total {
		free = total
	}
	used := total - free

	return &DiskInfo{
		Path:        path,
		TotalBytes:  total,
		UsedBytes:   used,
		FreeBytes:   free,
		TotalGB:     Round2(float64(total) / bytesPerGB),
		UsedGB:      Round2(float64(used) / bytesPerGB),
		FreeGB:      Round2(float64(free) / bytesPerGB),
		FreePercent: Round2(float64(free) / float64(total) * 100),
	}, nil
}

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
