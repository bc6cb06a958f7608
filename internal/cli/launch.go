package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jaredbothwell/isim/internal/domain"
	"github.com/jaredbothwell/isim/internal/output"
	"github.com/jaredbothwell/isim/internal/simulator"
)

// LaunchCmd launches a simulator by name, OS version, or UDID
type LaunchCmd struct {
	Query   string `arg:"" help:"Simulator name, OS version, or UDID (prefix allowed)"`
	Wait    bool   `short:"w" help:"Wait until the simulator reports Booted"`
	Timeout string `help:"Boot wait timeout (with --wait)"`
}

// Run executes the launch command
func (c *LaunchCmd) Run(globals *Globals) error {
	return launchByQuery(globals, c.Query, c.Wait, c.Timeout)
}

// RunDefaultLaunch launches the stored default simulator. It backs the
// bare `isim` invocation.
func RunDefaultLaunch(globals *Globals) error {
	udid, err := globals.Store.Get()
	if err != nil {
		return outputErrorCommon(globals, "STORE_FAILED", err.Error())
	}
	if udid == "" {
		return outputErrorHint(globals, "NO_DEFAULT", "no default simulator set",
			"Run `isim list` to browse simulators, then: isim default <udid>")
	}
	return launchByQuery(globals, udid, false, "")
}

func launchByQuery(globals *Globals, query string, wait bool, timeout string) error {
	ctx := context.Background()
	mgr := simulator.NewManager(globals.Log)

	sims, err := mgr.List(ctx)
	if err != nil {
		return outputErrorHint(globals, "LIST_FAILED", err.Error(), hintForList(err))
	}

	sim := simulator.Find(sims, query)
	if sim == nil {
		return outputErrorHint(globals, "NOT_FOUND",
			fmt.Sprintf("no simulator found matching '%s'", query),
			"Run `isim list` to see available simulators")
	}
	globals.Log.Debugw("resolved simulator", "udid", sim.UDID, "name", sim.Name, "os", sim.OS)

	if !globals.Quiet {
		outputLaunchInfo(globals, sim)
	}

	launcher := simulator.NewLauncher(mgr, globals.Log)
	if err := launcher.Launch(ctx, sim.UDID); err != nil {
		return outputErrorHint(globals, "LAUNCH_FAILED", err.Error(), hintForTooling(err))
	}

	if wait {
		d, err := bootTimeout(globals, timeout)
		if err != nil {
			return outputErrorCommon(globals, "INVALID_FLAGS", err.Error())
		}
		if err := launcher.WaitForBoot(ctx, sim.UDID, d); err != nil {
			return outputErrorCommon(globals, "BOOT_TIMEOUT", err.Error())
		}
		if !globals.Quiet && globals.Format != "ndjson" {
			color := colorizer(globals)
			fmt.Fprintf(globals.Stdout, "%s is booted.\n", color.Render(output.Styles.Bold, sim.Name))
		}
	}

	return nil
}

func bootTimeout(globals *Globals, flagValue string) (time.Duration, error) {
	raw := flagValue
	if raw == "" && globals.Config != nil {
		raw = globals.Config.Defaults.BootTimeout
	}
	if raw == "" {
		raw = "60s"
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid boot timeout %q: %w", raw, err)
	}
	return d, nil
}

func outputLaunchInfo(globals *Globals, sim *domain.Simulator) {
	if globals.Format == "ndjson" {
		w := output.NewNDJSONWriter(globals.Stdout)
		if err := w.WriteInfo(fmt.Sprintf("Launching %s (%s)", sim.Name, sim.OS), sim.Name, sim.UDID); err != nil {
			globals.Log.Debugw("failed to write launch info", "error", err)
		}
		return
	}

	color := colorizer(globals)
	fmt.Fprintf(globals.Stdout, "Launching %s (%s)...\n",
		color.Render(output.Styles.Bold, sim.Name),
		color.Render(output.Styles.OS, sim.OS))
}
