package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/vitals/internal/bridge"
	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/dashboard"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// dashboardCommand loads config, wires the refresher, registry, bridge,
// and Bubble Tea program together, and runs the dashboard until quit.
func dashboardCommand(configPath, intervalOverride string, noBridge bool) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	interval, err := resolveInterval(cfg, intervalOverride)
	if err != nil {
		return err
	}

	log := logger.New("dashboard")

	// Baseline first, then probe the machine for real topology and
	// capacity. Detection failures leave the baseline values in place.
	set := metrics.Baseline()
	metrics.Detect(set, log)
	refresher := metrics.NewRefresher(set, log)

	bridgeEnabled := cfg.Bridge.Enabled && !noBridge

	// The poster stays a nil interface when the bridge is off so the
	// model logs and drops actions instead of posting into a dead hub.
	var poster dashboard.Poster
	var hub *bridge.Hub
	if bridgeEnabled {
		hub = bridge.NewHub(logger.New("bridge"))
		poster = hub
	}

	model := dashboard.NewModel(refresher, dashboard.NewRegistry(), interval, poster, log)
	program := tea.NewProgram(model, tea.WithAltScreen())

	var server *bridge.Server
	if bridgeEnabled {
		server = bridge.NewServer(hub, dashboard.NewBridge(program), logger.New("bridge"))
		go func() {
			if err := server.Start(cfg.Bridge.Listen); err != nil && err != http.ErrServerClosed {
				log.Warn("bridge server stopped: %v", err)
			}
		}()
	}

	_, runErr := program.Run()

	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Debug("bridge shutdown: %v", err)
		}
	}

	return runErr
}

// resolveInterval picks the refresh interval: the --interval flag wins
// over the config file value.
func resolveInterval(cfg *config.Config, override string) (time.Duration, error) {
	if override == "" {
		return cfg.RefreshInterval, nil
	}

	parsed, err := time.ParseDuration(override)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", override),
			"Use a valid duration like 2s, 5s, or 1m")
	}
	if parsed < config.MinRefreshInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %s", config.MinRefreshInterval))
	}
	return parsed, nil
}
