package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jaredbothwell/isim/internal/cli"
	"github.com/jaredbothwell/isim/internal/config"
)

// commandNames are the first arguments kong knows about. Anything else is
// treated as a launch query, so `isim "iPhone 15"` works like the long form.
var commandNames = map[string]bool{
	"list":       true,
	"launch":     true,
	"default":    true,
	"pick":       true,
	"apps":       true,
	"doctor":     true,
	"config":     true,
	"examples":   true,
	"completion": true,
	"version":    true,
}

func main() {
	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	store, err := config.NewDefaultStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Bare `isim` launches the stored default simulator.
	if len(os.Args) == 1 {
		c := cli.CLI{Format: cfg.Format}
		globals := cli.NewGlobals(&c, cfg, store)
		if err := cli.RunDefaultLaunch(globals); err != nil {
			os.Exit(1)
		}
		return
	}

	args := rewriteArgs(os.Args[1:])

	var c cli.CLI
	parser, err := kong.New(&c,
		kong.Name("isim"),
		kong.Description("iOS Simulator launcher\n\nRun `isim list` to browse simulators, `isim launch <query>` to start one,\nand `isim default <udid>` to persist a favorite. Bare `isim` launches the default."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{
			"config_format": cfg.Format,
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	globals := cli.NewGlobals(&c, cfg, store)
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}

// rewriteArgs maps the loose CLI surface onto kong's command grammar:
// `isim help` behaves like --help, and an unknown first argument becomes
// a launch query.
func rewriteArgs(args []string) []string {
	first := args[0]

	if first == "help" {
		return append([]string{"--help"}, args[1:]...)
	}
	if strings.HasPrefix(first, "-") || commandNames[first] {
		return args
	}
	return append([]string{"launch"}, args...)
}
