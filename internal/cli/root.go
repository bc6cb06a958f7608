package cli

import (
	"io"
	"os"

	"github.com/jaredbothwell/isim/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI is the root command structure for isim
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"text,ndjson" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress informational output"`
	Verbose bool   `short:"v" help:"Show debug output (resolved devices, external commands)"`
	NoColor bool   `help:"Disable colored output"`

	// Commands
	List       ListCmd       `cmd:"" help:"List available simulators"`
	Launch     LaunchCmd     `cmd:"" help:"Launch a simulator by name, OS version, or UDID"`
	Default    DefaultCmd    `cmd:"" help:"Show, set, or clear the default simulator"`
	Pick       PickCmd       `cmd:"" help:"Interactively pick a simulator"`
	Apps       AppsCmd       `cmd:"" help:"List installed apps on a simulator"`
	Doctor     DoctorCmd     `cmd:"" help:"Check system requirements and configuration"`
	Config     ConfigCmd     `cmd:"" help:"Show or manage configuration"`
	Examples   ExamplesCmd   `cmd:"" help:"Show usage examples for isim commands"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Store   *config.DefaultStore
	Log     *zap.SugaredLogger
}

// NewGlobals creates a new Globals instance from CLI flags with config fallbacks
func NewGlobals(cli *CLI, cfg *config.Config, store *config.DefaultStore) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		NoColor: cli.NoColor,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Store:   store,
		Log:     zap.NewNop().Sugar(),
	}

	// Apply config values if CLI flags weren't explicitly set
	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
		if !cli.NoColor && cfg.NoColor {
			g.NoColor = cfg.NoColor
		}
	}

	if g.Verbose {
		g.Log = newDebugLogger(g.Stderr)
	}

	return g
}

// newDebugLogger builds a zap logger for --verbose diagnostics.
func newDebugLogger(w io.Writer) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core).Sugar()
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
	} else {
		io.WriteString(globals.Stdout, "isim version "+Version+" ("+Commit+")\n")
	}
	return nil
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
