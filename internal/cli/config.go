package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jaredbothwell/isim/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "ndjson" {
		out := map[string]interface{}{
			"type":     "config",
			"format":   cfg.Format,
			"quiet":    cfg.Quiet,
			"verbose":  cfg.Verbose,
			"no_color": cfg.NoColor,
			"defaults": cfg.Defaults,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(out)
	}

	// Text output
	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  format:   %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:    %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose:  %v\n", cfg.Verbose)
	fmt.Fprintf(globals.Stdout, "  no_color: %v\n", cfg.NoColor)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Defaults:")
	fmt.Fprintf(globals.Stdout, "  boot_timeout: %s\n", cfg.Defaults.BootTimeout)
	if cfg.Defaults.Filter != "" {
		fmt.Fprintf(globals.Stdout, "  filter:       %s\n", cfg.Defaults.Filter)
	}

	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "Default simulator file: %s\n", globals.Store.Path())

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		out := map[string]interface{}{
			"type":         "config_path",
			"path":         path,
			"default_file": globals.Store.Path(),
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(out)
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ~/.isim.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.config/isim/config.yaml")
		fmt.Fprintln(globals.Stdout, "  ./.isim.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}
	fmt.Fprintf(globals.Stdout, "Default simulator file: %s\n", globals.Store.Path())

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# isim configuration file
# Place this file at ~/.isim.yaml, ~/.config/isim/config.yaml, or ./.isim.yaml

# Output format: "text" (default) or "ndjson"
format: text

# Suppress informational output
quiet: false

# Enable verbose/debug output
verbose: false

# Disable colored output (NO_COLOR is also honored)
no_color: false

defaults:
  # How long ` + "`isim launch --wait`" + ` polls for the Booted state
  boot_timeout: 60s

  # Substring filter applied by ` + "`isim list`" + ` when no argument is given
  # filter: iphone
`
	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
