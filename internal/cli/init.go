package cli

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/errors"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Interval       string // Pre-specified refresh interval
	Listen         string // Pre-specified bridge listen address
	NoBridge       bool   // Disable the bridge in the generated config
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// configDoc is the YAML shape written by init. The interval is written
// as a duration string ("2s") rather than raw nanoseconds.
type configDoc struct {
	Version         int    `yaml:"version"`
	RefreshInterval string `yaml:"refresh_interval"`
	Bridge          struct {
		Enabled bool   `yaml:"enabled"`
		Listen  string `yaml:"listen"`
	} `yaml:"bridge"`
}

// Init creates a new .vitals.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	interval := opts.Interval
	if interval == "" {
		interval = config.DefaultRefreshInterval.String()
	}
	listen := opts.Listen
	if listen == "" {
		listen = config.DefaultBridgeListen
	}
	bridgeEnabled := !opts.NoBridge

	if !opts.NonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Refresh interval").
					Description("How often the dashboard refreshes its metrics").
					Placeholder(config.DefaultRefreshInterval.String()).
					Value(&interval).
					Validate(validateInterval),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Enable the host bridge?").
					Description("Lets an embedding host push metrics and receive action signals").
					Value(&bridgeEnabled),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Bridge listen address").
					Description("host:port the bridge WebSocket server binds to").
					Placeholder(config.DefaultBridgeListen).
					Value(&listen).
					Validate(validateListen),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}
	}

	// Validate flag-provided values in non-interactive mode too.
	if err := validateInterval(interval); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", interval),
			"Use a valid duration like 2s, 5s, or 1m")
	}
	if err := validateListen(listen); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid listen address: %s", listen),
			"Use host:port, like 127.0.0.1:7317")
	}

	var doc configDoc
	doc.Version = config.CurrentConfigVersion
	doc.RefreshInterval = interval
	doc.Bridge.Enabled = bridgeEnabled
	doc.Bridge.Listen = listen

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# vitals configuration
# Run 'vitals' to start the dashboard
# See: https://github.com/rileyhilliard/vitals for documentation

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  vitals            - Start the dashboard")
	fmt.Println("  vitals --no-bridge - Run without the host bridge")

	return nil
}

func validateInterval(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a valid duration (try 2s or 5s)")
	}
	if d < config.MinRefreshInterval {
		return fmt.Errorf("minimum interval is %s", config.MinRefreshInterval)
	}
	return nil
}

func validateListen(s string) error {
	if _, _, err := net.SplitHostPort(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use host:port, like 127.0.0.1:7317")
	}
	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(interval, listen string, noBridge, force, nonInteractive bool) error {
	return Init(InitOptions{
		Interval:       interval,
		Listen:         listen,
		NoBridge:       noBridge,
		Overwrite:      force,
		NonInteractive: nonInteractive,
	})
}
