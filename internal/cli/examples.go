package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ExamplesCmd shows usage examples for isim commands
type ExamplesCmd struct {
	Command string `arg:"" optional:"" help:"Show examples for a specific command (list, launch, default, ...)"`
	JSON    bool   `help:"Output as JSON for programmatic access"`
}

// Example represents a single usage example
type Example struct {
	Command     string `json:"command"`
	Description string `json:"description"`
	When        string `json:"when,omitempty"`
}

// CommandExamples holds examples for a single command
type CommandExamples struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Examples    []Example `json:"examples"`
}

var commandExamples = map[string]CommandExamples{
	"list": {
		Name:        "list",
		Description: "List available simulators",
		Examples: []Example{
			{
				Command:     `isim list`,
				Description: "All available iOS/iPadOS simulators, sorted by OS version then name",
			},
			{
				Command:     `isim list iphone`,
				Description: "Only simulators whose UDID, name, OS, or state contains 'iphone'",
			},
			{
				Command:     `isim list 'iOS 17'`,
				Description: "Filter by OS version",
			},
			{
				Command:     `isim list booted`,
				Description: "Only booted simulators (the state column is searched too)",
			},
		},
	},
	"launch": {
		Name:        "launch",
		Description: "Launch a simulator by name, OS version, or UDID",
		Examples: []Example{
			{
				Command:     `isim launch 'iPhone 15 Pro'`,
				Description: "Launch by device name",
			},
			{
				Command:     `isim launch A1B2C3D4`,
				Description: "Launch by UDID prefix",
			},
			{
				Command:     `isim launch 'iPad 17' --wait`,
				Description: "Launch and block until the device reports Booted",
			},
			{
				Command:     `isim`,
				Description: "No arguments launches the stored default simulator",
				When:        "After `isim default <udid>` has been run once",
			},
		},
	},
	"default": {
		Name:        "default",
		Description: "Show, set, or clear the default simulator",
		Examples: []Example{
			{
				Command:     `isim default`,
				Description: "Show the current default",
			},
			{
				Command:     `isim default A1B2C3D4-E5F6-7890-ABCD-EF1234567890`,
				Description: "Persist a default UDID",
			},
			{
				Command:     `isim default A1B2C3D4-... --force`,
				Description: "Store a UDID that is not currently available",
				When:        "The runtime is temporarily uninstalled but the device will come back",
			},
			{
				Command:     `isim default --clear`,
				Description: "Remove the stored default",
			},
		},
	},
	"pick": {
		Name:        "pick",
		Description: "Interactively pick a simulator",
		Examples: []Example{
			{
				Command:     `isim pick`,
				Description: "Choose a simulator from a list and store it as the default",
			},
			{
				Command:     `isim pick --launch`,
				Description: "Choose a simulator and launch it immediately",
			},
		},
	},
	"apps": {
		Name:        "apps",
		Description: "List installed apps on a booted simulator",
		Examples: []Example{
			{
				Command:     `isim apps`,
				Description: "Apps on the currently booted simulator",
			},
			{
				Command:     `isim apps -s 'iPhone 15' --user-only`,
				Description: "User-installed apps on a specific simulator",
			},
		},
	},
	"doctor": {
		Name:        "doctor",
		Description: "Check system requirements and configuration",
		Examples: []Example{
			{
				Command:     `isim doctor`,
				Description: "Verify xcrun, open, runtimes, config, and the stored default",
			},
		},
	},
}

// Run executes the examples command
func (c *ExamplesCmd) Run(globals *Globals) error {
	if c.Command != "" {
		ex, ok := commandExamples[strings.ToLower(c.Command)]
		if !ok {
			return outputErrorCommon(globals, "NOT_FOUND",
				fmt.Sprintf("no examples for command '%s'", c.Command))
		}
		return c.output(globals, []CommandExamples{ex})
	}

	names := make([]string, 0, len(commandExamples))
	for name := range commandExamples {
		names = append(names, name)
	}
	sort.Strings(names)

	all := make([]CommandExamples, 0, len(names))
	for _, name := range names {
		all = append(all, commandExamples[name])
	}
	return c.output(globals, all)
}

func (c *ExamplesCmd) output(globals *Globals, commands []CommandExamples) error {
	if c.JSON || globals.Format == "ndjson" {
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(map[string]any{
			"type":     "examples",
			"commands": commands,
		})
	}

	for _, cmd := range commands {
		fmt.Fprintf(globals.Stdout, "%s — %s\n", cmd.Name, cmd.Description)
		for _, ex := range cmd.Examples {
			fmt.Fprintf(globals.Stdout, "  %s\n", ex.Command)
			fmt.Fprintf(globals.Stdout, "      %s\n", ex.Description)
			if ex.When != "" {
				fmt.Fprintf(globals.Stdout, "      When: %s\n", ex.When)
			}
		}
		fmt.Fprintln(globals.Stdout)
	}
	return nil
}
