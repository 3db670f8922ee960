package config

import (
	"fmt"
	"net"
	"time"

	"github.com/rileyhilliard/vitals/internal/errors"
)

// MinRefreshInterval is the shortest refresh interval the dashboard accepts.
// The CPU estimate deliberately busy-waits ~10ms per tick, so very short
// intervals would spend a visible share of wall time stalled.
const MinRefreshInterval = 100 * time.Millisecond

// Validate checks a Config for invalid or inconsistent values.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config version %d is newer than supported version %d", cfg.Version, CurrentConfigVersion),
			"Upgrade vitals or regenerate the config with 'vitals init'")
	}

	if cfg.RefreshInterval < MinRefreshInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("refresh_interval %s is below the minimum %s", cfg.RefreshInterval, MinRefreshInterval),
			"Use a refresh_interval of at least 100ms")
	}

	if cfg.Bridge.Enabled {
		if _, _, err := net.SplitHostPort(cfg.Bridge.Listen); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid bridge listen address %q", cfg.Bridge.Listen),
				"Use a host:port address like 127.0.0.1:7317")
		}
	}

	return nil
}
