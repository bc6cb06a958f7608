package cli

import (
	"context"
	"fmt"

	"github.com/jaredbothwell/isim/internal/domain"
	"github.com/jaredbothwell/isim/internal/output"
	"github.com/jaredbothwell/isim/internal/simulator"
)

// ListCmd lists available simulators
type ListCmd struct {
	Filter string `arg:"" optional:"" help:"Substring filter across UDID, name, OS, and state"`
}

// Run executes the list command
func (c *ListCmd) Run(globals *Globals) error {
	ctx := context.Background()
	mgr := simulator.NewManager(globals.Log)

	sims, err := mgr.List(ctx)
	if err != nil {
		return outputErrorHint(globals, "LIST_FAILED", err.Error(), hintForList(err))
	}

	filter := c.Filter
	if filter == "" && globals.Config != nil {
		filter = globals.Config.Defaults.Filter
	}
	sims = simulator.Filter(sims, filter)

	if len(sims) == 0 {
		msg := "No simulators found"
		if filter != "" {
			msg = fmt.Sprintf("No simulators found matching '%s'", filter)
		}
		return outputErrorCommon(globals, "NO_RESULTS", msg)
	}

	defaultUDID, err := globals.Store.Get()
	if err != nil {
		globals.Log.Debugw("failed to read default store", "error", err)
		defaultUDID = ""
	}

	if globals.Format == "ndjson" {
		return c.outputNDJSON(globals, sims, defaultUDID)
	}
	return c.outputText(globals, sims, defaultUDID)
}

func (c *ListCmd) outputNDJSON(globals *Globals, sims []domain.Simulator, defaultUDID string) error {
	w := output.NewNDJSONWriter(globals.Stdout)
	for _, s := range sims {
		entry := struct {
			Type          string `json:"type"`
			SchemaVersion int    `json:"schemaVersion"`
			domain.Simulator
			IsDefault bool `json:"isDefault,omitempty"`
		}{
			Type:          "simulator",
			SchemaVersion: output.SchemaVersion,
			Simulator:     s,
			IsDefault:     s.UDID == defaultUDID,
		}
		if err := w.Encode(entry); err != nil {
			return err
		}
	}

	booted := 0
	for _, s := range sims {
		if s.IsBooted() {
			booted++
		}
	}
	return w.Encode(map[string]any{
		"type":          "list_summary",
		"schemaVersion": output.SchemaVersion,
		"total":         len(sims),
		"booted":        booted,
	})
}

func (c *ListCmd) outputText(globals *Globals, sims []domain.Simulator, defaultUDID string) error {
	table := output.NewSimulatorTable(globals.Stdout, colorizer(globals), defaultUDID)
	return table.Render(sims)
}
