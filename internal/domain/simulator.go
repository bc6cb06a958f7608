package domain

import "fmt"

// DeviceState represents the current state of a simulator
type DeviceState string

const (
	DeviceStateShutdown     DeviceState = "Shutdown"
	DeviceStateBooted       DeviceState = "Booted"
	DeviceStateBooting      DeviceState = "Booting"
	DeviceStateCreating     DeviceState = "Creating"
	DeviceStateShuttingDown DeviceState = "Shutting Down"
)

// Version is an OS version tuple parsed from a simctl runtime identifier.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// Compare returns -1, 0, or 1 ordering v against other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// String renders the version, omitting a zero patch ("17.2", "17.0.1").
func (v Version) String() string {
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Simulator represents one available iOS/iPadOS Simulator device, built
// transiently from simctl output on each run.
type Simulator struct {
	UDID    string      `json:"udid"`
	Name    string      `json:"name"`
	OS      string      `json:"os"` // composed, e.g. "iOS 17.2"
	State   DeviceState `json:"state"`
	Version Version     `json:"-"`
}

// IsBooted returns true if the device is currently booted
func (s *Simulator) IsBooted() bool {
	return s.State == DeviceStateBooted
}

// SimctlDevicesResponse matches `xcrun simctl list devices --json` output
type SimctlDevicesResponse struct {
	Devices map[string][]SimctlDevice `json:"devices"`
}

// SimctlDevice represents a device from simctl JSON output
type SimctlDevice struct {
	UDID                 string `json:"udid"`
	Name                 string `json:"name"`
	State                string `json:"state"`
	IsAvailable          bool   `json:"isAvailable"`
	DeviceTypeIdentifier string `json:"deviceTypeIdentifier"`
	DataPath             string `json:"dataPath"`
	LogPath              string `json:"logPath"`
}
