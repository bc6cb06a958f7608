package cli

import (
	"context"
	"fmt"

	"github.com/jaredbothwell/isim/internal/output"
	"github.com/jaredbothwell/isim/internal/simulator"
)

// DefaultCmd shows, sets, or clears the default simulator
type DefaultCmd struct {
	UDID  string `arg:"" optional:"" help:"Simulator UDID to persist as the default"`
	Clear bool   `help:"Remove the stored default"`
	Force bool   `help:"Store the UDID even when no available simulator matches it"`
}

// Run executes the default command
func (c *DefaultCmd) Run(globals *Globals) error {
	if c.Clear && c.UDID != "" {
		return outputErrorCommon(globals, "INVALID_FLAGS", "--clear cannot be combined with a UDID argument")
	}

	switch {
	case c.Clear:
		return c.runClear(globals)
	case c.UDID != "":
		return c.runSet(globals)
	default:
		return c.runShow(globals)
	}
}

func (c *DefaultCmd) runShow(globals *Globals) error {
	udid, err := globals.Store.Get()
	if err != nil {
		return outputErrorCommon(globals, "STORE_FAILED", err.Error())
	}
	if udid == "" {
		return outputErrorHint(globals, "NO_DEFAULT", "no default set", "Run: isim default <udid>")
	}

	sim := c.lookup(globals, udid)

	if globals.Format == "ndjson" {
		w := output.NewNDJSONWriter(globals.Stdout)
		entry := map[string]any{
			"type":          "default",
			"schemaVersion": output.SchemaVersion,
			"udid":          udid,
			"available":     sim != nil,
		}
		if sim != nil {
			entry["name"] = sim.Name
			entry["os"] = sim.OS
		}
		return w.Encode(entry)
	}

	color := colorizer(globals)
	if sim != nil {
		fmt.Fprintf(globals.Stdout, "Default: %s (%s)\n",
			color.Render(output.Styles.Bold, sim.Name),
			color.Render(output.Styles.OS, sim.OS))
		fmt.Fprintf(globals.Stdout, "  UDID: %s\n", udid)
	} else {
		fmt.Fprintf(globals.Stdout, "Default UDID: %s (not found in available simulators)\n", udid)
	}
	return nil
}

func (c *DefaultCmd) runSet(globals *Globals) error {
	sim := c.lookup(globals, c.UDID)

	// Writes are unvalidated on purpose: a stored UDID may belong to a
	// runtime that is temporarily uninstalled. Require --force so typos
	// don't slip through silently.
	if sim == nil && !c.Force {
		return outputErrorHint(globals, "NOT_FOUND",
			fmt.Sprintf("UDID '%s' not found in available simulators", c.UDID),
			"Pass --force to store it anyway")
	}

	if err := globals.Store.Set(c.UDID); err != nil {
		return outputErrorCommon(globals, "STORE_FAILED", err.Error())
	}

	if globals.Format == "ndjson" {
		w := output.NewNDJSONWriter(globals.Stdout)
		entry := map[string]any{
			"type":          "default_set",
			"schemaVersion": output.SchemaVersion,
			"udid":          c.UDID,
			"available":     sim != nil,
		}
		if sim != nil {
			entry["name"] = sim.Name
			entry["os"] = sim.OS
		}
		return w.Encode(entry)
	}

	color := colorizer(globals)
	if sim != nil {
		fmt.Fprintf(globals.Stdout, "Default set to: %s (%s)\n",
			color.Render(output.Styles.Bold, sim.Name),
			color.Render(output.Styles.OS, sim.OS))
	} else {
		fmt.Fprintf(globals.Stdout, "Default set to: %s\n", c.UDID)
	}
	return nil
}

func (c *DefaultCmd) runClear(globals *Globals) error {
	if err := globals.Store.Clear(); err != nil {
		return outputErrorCommon(globals, "STORE_FAILED", err.Error())
	}

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).Encode(map[string]any{
			"type":          "default_cleared",
			"schemaVersion": output.SchemaVersion,
		})
	}
	fmt.Fprintln(globals.Stdout, "Default cleared.")
	return nil
}

// lookup resolves udid against the live device list, tolerating
// enumeration failures (the default file is still usable without xcrun).
func (c *DefaultCmd) lookup(globals *Globals, udid string) *simDisplay {
	mgr := simulator.NewManager(globals.Log)
	sims, err := mgr.List(context.Background())
	if err != nil {
		globals.Log.Debugw("device enumeration failed during default lookup", "error", err)
		return nil
	}
	sim := simulator.Find(sims, udid)
	if sim == nil {
		return nil
	}
	return &simDisplay{Name: sim.Name, OS: sim.OS}
}

type simDisplay struct {
	Name string
	OS   string
}
