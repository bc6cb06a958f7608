package cli

import (
	"context"
	"fmt"
	"os/exec"
	"sort"

	"github.com/jaredbothwell/isim/internal/domain"
	"github.com/jaredbothwell/isim/internal/output"
	"github.com/jaredbothwell/isim/internal/simulator"
	"howett.net/plist"
)

// AppsCmd lists installed apps on a simulator
type AppsCmd struct {
	Simulator string `short:"s" help:"Simulator name, OS, or UDID (defaults to the booted simulator)"`
	UserOnly  bool   `help:"Show only user-installed apps (exclude system apps)"`
}

// appInfo represents information about an installed app
type appInfo struct {
	BundleID    string `json:"bundle_id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	BuildNumber string `json:"build_number,omitempty"`
	Path        string `json:"path,omitempty"`
	Type        string `json:"type"` // "user" or "system"
}

// plistAppInfo is the structure from simctl listapps plist output
type plistAppInfo struct {
	ApplicationType    string `plist:"ApplicationType"`
	BundleIdentifier   string `plist:"CFBundleIdentifier"`
	BundleName         string `plist:"CFBundleName"`
	BundleDisplayName  string `plist:"CFBundleDisplayName"`
	BundleVersion      string `plist:"CFBundleVersion"`
	BundleShortVersion string `plist:"CFBundleShortVersionString"`
	Path               string `plist:"Path"`
}

// Run executes the apps command
func (c *AppsCmd) Run(globals *Globals) error {
	ctx := context.Background()
	mgr := simulator.NewManager(globals.Log)

	device, err := c.resolveDevice(ctx, mgr)
	if err != nil {
		return outputErrorHint(globals, "NOT_FOUND", err.Error(), hintForDeviceLookup(err))
	}

	// listapps only answers for booted devices.
	if !device.IsBooted() {
		return outputErrorCommon(globals, "DEVICE_NOT_BOOTED",
			fmt.Sprintf("simulator %s is not booted; launch it first: isim launch '%s'", device.Name, device.Name))
	}

	apps, err := c.getInstalledApps(ctx, device.UDID)
	if err != nil {
		return outputErrorHint(globals, "LIST_APPS_FAILED", err.Error(), hintForTooling(err))
	}

	if c.UserOnly {
		var userApps []appInfo
		for _, app := range apps {
			if app.Type == "user" {
				userApps = append(userApps, app)
			}
		}
		apps = userApps
	}

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].BundleID < apps[j].BundleID
	})

	if globals.Format == "ndjson" {
		w := output.NewNDJSONWriter(globals.Stdout)
		for _, app := range apps {
			entry := map[string]any{
				"type":          "app",
				"schemaVersion": output.SchemaVersion,
				"bundle_id":     app.BundleID,
				"name":          app.Name,
				"version":       app.Version,
				"app_type":      app.Type,
			}
			if app.BuildNumber != "" {
				entry["build_number"] = app.BuildNumber
			}
			if app.Path != "" {
				entry["path"] = app.Path
			}
			if err := w.Encode(entry); err != nil {
				return err
			}
		}
		return w.Encode(map[string]any{
			"type":          "apps_summary",
			"schemaVersion": output.SchemaVersion,
			"device":        device.Name,
			"udid":          device.UDID,
			"total":         len(apps),
		})
	}

	if !globals.Quiet {
		fmt.Fprintf(globals.Stdout, "Installed apps on %s (%s)\n\n", device.Name, device.UDID)
	}
	for _, app := range apps {
		fmt.Fprintf(globals.Stdout, "%-50s %s (%s)\n", app.BundleID, app.Name, app.Version)
	}
	if !globals.Quiet {
		fmt.Fprintf(globals.Stdout, "\nTotal: %d apps\n", len(apps))
	}

	return nil
}

func (c *AppsCmd) resolveDevice(ctx context.Context, mgr *simulator.Manager) (*domain.Simulator, error) {
	if c.Simulator != "" {
		return mgr.FindDevice(ctx, c.Simulator)
	}

	sims, err := mgr.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sims {
		if sims[i].IsBooted() {
			return &sims[i], nil
		}
	}
	return nil, fmt.Errorf("no booted simulator found; pass --simulator or launch one first")
}

func (c *AppsCmd) getInstalledApps(ctx context.Context, udid string) ([]appInfo, error) {
	cmd := exec.CommandContext(ctx, "xcrun", "simctl", "listapps", udid)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("simctl listapps failed: %w", err)
	}

	var appsDict map[string]plistAppInfo
	if _, err := plist.Unmarshal(out, &appsDict); err != nil {
		return nil, fmt.Errorf("failed to parse apps plist: %w", err)
	}

	var apps []appInfo
	for bundleID, info := range appsDict {
		name := info.BundleDisplayName
		if name == "" {
			name = info.BundleName
		}
		if name == "" {
			name = bundleID
		}

		version := info.BundleShortVersion
		if version == "" {
			version = info.BundleVersion
		}

		appType := "system"
		if info.ApplicationType == "User" {
			appType = "user"
		}

		apps = append(apps, appInfo{
			BundleID:    bundleID,
			Name:        name,
			Version:     version,
			BuildNumber: info.BundleVersion,
			Path:        info.Path,
			Type:        appType,
		})
	}

	return apps, nil
}
