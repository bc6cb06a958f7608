package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jaredbothwell/isim/internal/config"
	"github.com/jaredbothwell/isim/internal/simulator"
	"github.com/tidwall/gjson"
)

// DoctorCmd checks system requirements and configuration
type DoctorCmd struct{}

// checkResult represents a single diagnostic check
type checkResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// doctorReport is the complete diagnostic report
type doctorReport struct {
	Type       string        `json:"type"`
	Timestamp  string        `json:"timestamp"`
	Checks     []checkResult `json:"checks"`
	AllPassed  bool          `json:"all_passed"`
	ErrorCount int           `json:"error_count"`
	WarnCount  int           `json:"warn_count"`
}

// Run executes the doctor command
func (c *DoctorCmd) Run(globals *Globals) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var checks []checkResult

	checks = append(checks, c.checkXcrun(ctx))
	checks = append(checks, c.checkOpen())
	checks = append(checks, c.checkRuntimes(ctx))
	checks = append(checks, c.checkSimulators(ctx, globals))
	checks = append(checks, c.checkConfig())
	checks = append(checks, c.checkDefault(ctx, globals))

	errorCount := 0
	warnCount := 0
	for _, check := range checks {
		if check.Status == "error" {
			errorCount++
		} else if check.Status == "warning" {
			warnCount++
		}
	}

	report := doctorReport{
		Type:       "doctor",
		Timestamp:  time.Now().Format(time.RFC3339),
		Checks:     checks,
		AllPassed:  errorCount == 0,
		ErrorCount: errorCount,
		WarnCount:  warnCount,
	}

	if globals.Format == "ndjson" {
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(report)
	}

	// Text output
	fmt.Fprintln(globals.Stdout, "isim Doctor")
	fmt.Fprintln(globals.Stdout, "===========")
	fmt.Fprintln(globals.Stdout)

	for _, check := range checks {
		symbol := "✓"
		if check.Status == "warning" {
			symbol = "!"
		} else if check.Status == "error" {
			symbol = "✗"
		}
		fmt.Fprintf(globals.Stdout, "  %s %s: %s\n", symbol, check.Name, check.Message)
		if check.Details != "" {
			fmt.Fprintf(globals.Stdout, "      %s\n", check.Details)
		}
	}

	fmt.Fprintln(globals.Stdout)
	if report.AllPassed {
		fmt.Fprintln(globals.Stdout, "All checks passed.")
		return nil
	}
	fmt.Fprintf(globals.Stdout, "%d error(s), %d warning(s)\n", errorCount, warnCount)
	return fmt.Errorf("doctor found %d error(s)", errorCount)
}

func (c *DoctorCmd) checkXcrun(ctx context.Context) checkResult {
	path, err := exec.LookPath("xcrun")
	if err != nil {
		return checkResult{
			Name:    "xcrun",
			Status:  "error",
			Message: "not found",
			Details: "Install Xcode Command Line Tools: xcode-select --install",
		}
	}

	out, err := exec.CommandContext(ctx, "xcrun", "--version").Output()
	if err != nil {
		return checkResult{
			Name:    "xcrun",
			Status:  "error",
			Message: "found but not working",
			Details: err.Error(),
		}
	}

	return checkResult{
		Name:    "xcrun",
		Status:  "ok",
		Message: strings.TrimSpace(string(out)),
		Details: path,
	}
}

func (c *DoctorCmd) checkOpen() checkResult {
	path, err := exec.LookPath("open")
	if err != nil {
		return checkResult{
			Name:    "open",
			Status:  "error",
			Message: "not found",
			Details: "isim launches simulators with `open -a Simulator` (macOS only)",
		}
	}
	return checkResult{
		Name:    "open",
		Status:  "ok",
		Message: "available",
		Details: path,
	}
}

func (c *DoctorCmd) checkRuntimes(ctx context.Context) checkResult {
	out, err := exec.CommandContext(ctx, "xcrun", "simctl", "list", "runtimes", "--json").Output()
	if err != nil {
		return checkResult{
			Name:    "runtimes",
			Status:  "error",
			Message: "simctl list runtimes failed",
			Details: err.Error(),
		}
	}

	runtimes := gjson.GetBytes(out, "runtimes")
	total := int(runtimes.Get("#").Int())
	if total == 0 {
		return checkResult{
			Name:    "runtimes",
			Status:  "warning",
			Message: "no simulator runtimes installed",
			Details: "Install one via Xcode > Settings > Platforms",
		}
	}

	var names []string
	runtimes.ForEach(func(_, rt gjson.Result) bool {
		if rt.Get("isAvailable").Bool() {
			names = append(names, rt.Get("name").String())
		}
		return true
	})

	return checkResult{
		Name:    "runtimes",
		Status:  "ok",
		Message: fmt.Sprintf("%d runtime(s) installed", total),
		Details: strings.Join(names, ", "),
	}
}

func (c *DoctorCmd) checkSimulators(ctx context.Context, globals *Globals) checkResult {
	mgr := simulator.NewManager(globals.Log)
	sims, err := mgr.List(ctx)
	if err != nil {
		return checkResult{
			Name:    "simulators",
			Status:  "error",
			Message: "device enumeration failed",
			Details: err.Error(),
		}
	}
	if len(sims) == 0 {
		return checkResult{
			Name:    "simulators",
			Status:  "warning",
			Message: "no iOS/iPadOS simulators available",
			Details: "Create one in Xcode or with: xcrun simctl create",
		}
	}

	booted := 0
	for _, s := range sims {
		if s.IsBooted() {
			booted++
		}
	}
	return checkResult{
		Name:    "simulators",
		Status:  "ok",
		Message: fmt.Sprintf("%d available, %d booted", len(sims), booted),
	}
}

func (c *DoctorCmd) checkConfig() checkResult {
	path := config.ConfigFile()
	if path == "" {
		return checkResult{
			Name:    "config",
			Status:  "ok",
			Message: "no config file (defaults in effect)",
		}
	}

	if _, err := config.LoadFromFile(path); err != nil {
		return checkResult{
			Name:    "config",
			Status:  "error",
			Message: "config file is invalid",
			Details: fmt.Sprintf("%s: %v", path, err),
		}
	}
	return checkResult{
		Name:    "config",
		Status:  "ok",
		Message: path,
	}
}

func (c *DoctorCmd) checkDefault(ctx context.Context, globals *Globals) checkResult {
	udid, err := globals.Store.Get()
	if err != nil {
		return checkResult{
			Name:    "default",
			Status:  "error",
			Message: "default file unreadable",
			Details: err.Error(),
		}
	}
	if udid == "" {
		return checkResult{
			Name:    "default",
			Status:  "ok",
			Message: "no default set",
			Details: globals.Store.Path(),
		}
	}

	mgr := simulator.NewManager(globals.Log)
	if _, err := mgr.GetDevice(ctx, udid); err != nil {
		return checkResult{
			Name:    "default",
			Status:  "warning",
			Message: fmt.Sprintf("default %s is not an available simulator", udid),
			Details: "Update it with: isim default <udid>",
		}
	}
	return checkResult{
		Name:    "default",
		Status:  "ok",
		Message: udid,
	}
}
