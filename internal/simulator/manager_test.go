package simulator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jaredbothwell/isim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuntime(t *testing.T) {
	tests := []struct {
		input      string
		expectedOS string
		expectedV  domain.Version
		ok         bool
	}{
		{"com.apple.CoreSimulator.SimRuntime.iOS-17-0", "iOS 17.0", domain.Version{Major: 17}, true},
		{"com.apple.CoreSimulator.SimRuntime.iOS-17-2", "iOS 17.2", domain.Version{Major: 17, Minor: 2}, true},
		{"com.apple.CoreSimulator.SimRuntime.iOS-16-4-1", "iOS 16.4.1", domain.Version{Major: 16, Minor: 4, Patch: 1}, true},
		{"com.apple.CoreSimulator.SimRuntime.iPadOS-17-0", "iPadOS 17.0", domain.Version{Major: 17}, true},
		{"com.apple.CoreSimulator.SimRuntime.watchOS-10-0", "", domain.Version{}, false},
		{"com.apple.CoreSimulator.SimRuntime.tvOS-17-0", "", domain.Version{}, false},
		{"com.apple.CoreSimulator.SimRuntime.visionOS-1-0", "", domain.Version{}, false},
		{"iOS-18-0", "iOS 18.0", domain.Version{Major: 18}, true},
		{"garbage", "", domain.Version{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			osName, v, ok := parseRuntime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expectedOS, osName)
				assert.Equal(t, tt.expectedV, v)
			}
		})
	}
}

func fixtureSims() []domain.Simulator {
	return []domain.Simulator{
		{UDID: "AAAA-1111", Name: "iPhone 15", OS: "iOS 17.2", State: domain.DeviceStateShutdown, Version: domain.Version{Major: 17, Minor: 2}},
		{UDID: "BBBB-2222", Name: "iPhone 15 Pro", OS: "iOS 17.2", State: domain.DeviceStateBooted, Version: domain.Version{Major: 17, Minor: 2}},
		{UDID: "CCCC-3333", Name: "iPad Air", OS: "iPadOS 16.4", State: domain.DeviceStateShutdown, Version: domain.Version{Major: 16, Minor: 4}},
		{UDID: "DDDD-4444", Name: "iPhone SE", OS: "iOS 16.4", State: domain.DeviceStateShutdown, Version: domain.Version{Major: 16, Minor: 4}},
	}
}

func TestSort(t *testing.T) {
	t.Run("orders by version then name", func(t *testing.T) {
		sims := fixtureSims()
		Sort(sims)

		var names []string
		for _, s := range sims {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"iPad Air", "iPhone SE", "iPhone 15", "iPhone 15 Pro"}, names)
	})

	t.Run("is stable for equal keys", func(t *testing.T) {
		sims := []domain.Simulator{
			{UDID: "first", Name: "iPhone 15", Version: domain.Version{Major: 17}},
			{UDID: "second", Name: "iPhone 15", Version: domain.Version{Major: 17}},
		}
		Sort(sims)
		assert.Equal(t, "first", sims[0].UDID)
		assert.Equal(t, "second", sims[1].UDID)
	})
}

func TestFilter(t *testing.T) {
	sims := fixtureSims()

	t.Run("substring present in exactly one record returns that record", func(t *testing.T) {
		got := Filter(sims, "SE")
		require.Len(t, got, 1)
		assert.Equal(t, "iPhone SE", got[0].Name)
	})

	t.Run("matches across state", func(t *testing.T) {
		got := Filter(sims, "booted")
		require.Len(t, got, 1)
		assert.Equal(t, "iPhone 15 Pro", got[0].Name)
	})

	t.Run("matches across OS", func(t *testing.T) {
		got := Filter(sims, "iPadOS")
		require.Len(t, got, 1)
		assert.Equal(t, "iPad Air", got[0].Name)
	})

	t.Run("unmatched term returns nothing", func(t *testing.T) {
		assert.Empty(t, Filter(sims, "nonexistent"))
	})

	t.Run("empty term returns everything", func(t *testing.T) {
		assert.Len(t, Filter(sims, ""), len(sims))
	})
}

func TestFind(t *testing.T) {
	sims := fixtureSims()

	t.Run("UDID prefix match wins over substring match", func(t *testing.T) {
		// "BBBB" is a UDID prefix; "bbb" also appears nowhere else,
		// so both passes would find it, but prefix runs first.
		got := Find(sims, "bbbb")
		require.NotNil(t, got)
		assert.Equal(t, "BBBB-2222", got.UDID)
	})

	t.Run("falls back to name substring", func(t *testing.T) {
		got := Find(sims, "se")
		require.NotNil(t, got)
		assert.Equal(t, "iPhone SE", got.Name)
	})

	t.Run("matches OS substring", func(t *testing.T) {
		got := Find(sims, "iPadOS 16")
		require.NotNil(t, got)
		assert.Equal(t, "iPad Air", got.Name)
	})

	t.Run("no match returns nil", func(t *testing.T) {
		assert.Nil(t, Find(sims, "nonexistent"))
	})
}

const stubDevicesJSON = `{
  "devices": {
    "com.apple.CoreSimulator.SimRuntime.iOS-17-2": [
      {
        "udid": "AAAA-1111",
        "name": "iPhone 15",
        "state": "Shutdown",
        "isAvailable": true,
        "deviceTypeIdentifier": "com.apple.CoreSimulator.SimDeviceType.iPhone-15"
      },
      {
        "udid": "EEEE-5555",
        "name": "iPhone 14",
        "state": "Shutdown",
        "isAvailable": false,
        "deviceTypeIdentifier": "com.apple.CoreSimulator.SimDeviceType.iPhone-14"
      }
    ],
    "com.apple.CoreSimulator.SimRuntime.iOS-16-4": [
      {
        "udid": "DDDD-4444",
        "name": "iPhone SE",
        "state": "Booted",
        "isAvailable": true,
        "deviceTypeIdentifier": "com.apple.CoreSimulator.SimDeviceType.iPhone-SE"
      }
    ],
    "com.apple.CoreSimulator.SimRuntime.watchOS-10-0": [
      {
        "udid": "FFFF-6666",
        "name": "Apple Watch",
        "state": "Shutdown",
        "isAvailable": true,
        "deviceTypeIdentifier": "com.apple.CoreSimulator.SimDeviceType.Watch"
      }
    ]
  }
}`

// stubXcrun installs a fake xcrun on PATH that answers
// `simctl list devices available --json` with the given payload.
func stubXcrun(t *testing.T, devicesJSON string) {
	t.Helper()
	stubDir := t.TempDir()
	script := `#!/bin/sh
set -eu
if [ "$#" -ge 5 ] && [ "$1" = "simctl" ] && [ "$2" = "list" ] && [ "$3" = "devices" ] && [ "$4" = "available" ] && [ "$5" = "--json" ]; then
  cat <<'EOF'
` + devicesJSON + `
EOF
  exit 0
fi
echo "stub: unsupported xcrun args: $*" >&2
exit 1
`
	require.NoError(t, os.WriteFile(filepath.Join(stubDir, "xcrun"), []byte(script), 0o755))
	t.Setenv("PATH", stubDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestManagerList_WithStubXcrun(t *testing.T) {
	stubXcrun(t, stubDevicesJSON)

	mgr := NewManager(nil)
	sims, err := mgr.List(context.Background())
	require.NoError(t, err)

	// Unavailable devices and non-iOS runtimes are dropped; results are
	// sorted ascending by version.
	require.Len(t, sims, 2)
	assert.Equal(t, "iPhone SE", sims[0].Name)
	assert.Equal(t, "iOS 16.4", sims[0].OS)
	assert.Equal(t, domain.DeviceStateBooted, sims[0].State)
	assert.Equal(t, "iPhone 15", sims[1].Name)
	assert.Equal(t, "iOS 17.2", sims[1].OS)
}

func TestManagerFindDevice_WithStubXcrun(t *testing.T) {
	stubXcrun(t, stubDevicesJSON)

	mgr := NewManager(nil)

	t.Run("resolves UDID prefix", func(t *testing.T) {
		sim, err := mgr.FindDevice(context.Background(), "aaaa")
		require.NoError(t, err)
		assert.Equal(t, "AAAA-1111", sim.UDID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := mgr.FindDevice(context.Background(), "nonexistent")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "nonexistent", nf.Query)
	})
}
