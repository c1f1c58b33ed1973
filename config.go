package pymot

import (
	"fmt"
	"math"

	"gopkg.in/ini.v1"
)

// Config holds the tuning parameters for an Evaluator. The zero value is
// not valid; use DefaultConfig or LoadConfig.
type Config struct {
	// OverlapThreshold is the minimum IoU for a pair to be considered a
	// correspondence, in both carry-over and optimal assignment. Must be
	// in (0, 1].
	OverlapThreshold float64

	// SyncDelta is the half-width of the ground-truth/hypothesis
	// timestamp matching window. Must be positive.
	SyncDelta float64

	// ForbiddenCost is the sentinel cost matrix value denoting a
	// forbidden pairing. Must be large enough that no finite 1/IoU can
	// reach it.
	ForbiddenCost float64
}

// DefaultConfig returns the default tuning parameters: overlap_threshold
// 0.2, sync_delta 1e-3, and a forbidden cost sentinel far above any
// achievable 1/IoU.
func DefaultConfig() Config {
	return Config{
		OverlapThreshold: 0.2,
		SyncDelta:        1e-3,
		ForbiddenCost:    math.MaxFloat64 / 2,
	}
}

// LoadConfig reads overlap_threshold, sync_delta and forbidden_cost from
// the [pymot] section of an ini file at path, falling back to
// DefaultConfig for any key that is absent. An empty path returns
// DefaultConfig unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %q: %w", path, err)
	}

	section := file.Section("pymot")
	cfg.OverlapThreshold = section.Key("overlap_threshold").MustFloat64(cfg.OverlapThreshold)
	cfg.SyncDelta = section.Key("sync_delta").MustFloat64(cfg.SyncDelta)
	cfg.ForbiddenCost = section.Key("forbidden_cost").MustFloat64(cfg.ForbiddenCost)

	if cfg.OverlapThreshold <= 0 || cfg.OverlapThreshold > 1 {
		return Config{}, fmt.Errorf("%w: overlap_threshold must be in (0, 1], got %v", ErrInvalidArgument, cfg.OverlapThreshold)
	}
	if cfg.SyncDelta <= 0 {
		return Config{}, fmt.Errorf("%w: sync_delta must be > 0, got %v", ErrInvalidArgument, cfg.SyncDelta)
	}

	return cfg, nil
}
