package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .vitals.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// RefreshInterval is how often the dashboard refreshes its metrics.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// Bridge configures the host bridge endpoint.
	Bridge BridgeConfig `yaml:"bridge" mapstructure:"bridge"`
}

// BridgeConfig controls the WebSocket endpoint the embedding host connects to.
type BridgeConfig struct {
	// Enabled toggles the bridge server on/off. With the bridge off the
	// dashboard still runs; outbound actions become logged no-ops.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Listen is the address the bridge server binds to.
	Listen string `yaml:"listen" mapstructure:"listen"`
}

// Default configuration values.
const (
	DefaultRefreshInterval = 2 * time.Second
	DefaultBridgeListen    = "127.0.0.1:7317"
)

// Defaults returns a Config populated with default values.
func Defaults() *Config {
	return &Config{
		Version:         CurrentConfigVersion,
		RefreshInterval: DefaultRefreshInterval,
		Bridge: BridgeConfig{
			Enabled: true,
			Listen:  DefaultBridgeListen,
		},
	}
}
