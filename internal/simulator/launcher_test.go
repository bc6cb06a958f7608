package simulator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOpen installs a fake `open` on PATH that records its arguments.
func stubOpen(t *testing.T) string {
	t.Helper()
	stubDir := t.TempDir()
	argsFile := filepath.Join(stubDir, "open-args")
	script := `#!/bin/sh
echo "$@" > "` + argsFile + `"
exit 0
`
	require.NoError(t, os.WriteFile(filepath.Join(stubDir, "open"), []byte(script), 0o755))
	t.Setenv("PATH", stubDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return argsFile
}

func TestLauncherLaunch(t *testing.T) {
	argsFile := stubOpen(t)

	l := NewLauncher(NewManager(nil), nil)
	require.NoError(t, l.Launch(context.Background(), "AAAA-1111"))

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.TrimSpace(string(recorded))
	assert.Equal(t, "-a Simulator --args -CurrentDeviceUDID AAAA-1111", args)
}

func TestLauncherLaunch_CommandFailure(t *testing.T) {
	stubDir := t.TempDir()
	script := `#!/bin/sh
echo "Unable to find application named 'Simulator'" >&2
exit 1
`
	require.NoError(t, os.WriteFile(filepath.Join(stubDir, "open"), []byte(script), 0o755))
	t.Setenv("PATH", stubDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	l := NewLauncher(NewManager(nil), nil)
	err := l.Launch(context.Background(), "AAAA-1111")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to launch Simulator")
}

func TestWaitForBoot(t *testing.T) {
	t.Run("returns immediately when already booted", func(t *testing.T) {
		stubXcrun(t, stubDevicesJSON) // DDDD-4444 reports Booted

		l := NewLauncher(NewManager(nil), nil)
		require.NoError(t, l.WaitForBoot(context.Background(), "DDDD-4444", time.Second))
	})

	t.Run("times out when the device never boots", func(t *testing.T) {
		stubXcrun(t, stubDevicesJSON) // AAAA-1111 stays Shutdown

		l := NewLauncher(NewManager(nil), nil)
		l.pollInterval = 5 * time.Millisecond

		err := l.WaitForBoot(context.Background(), "AAAA-1111", time.Millisecond)
		var bt *BootTimeoutError
		require.ErrorAs(t, err, &bt)
		assert.Equal(t, "AAAA-1111", bt.UDID)
	})

	t.Run("returns once the device boots", func(t *testing.T) {
		// Stateful stub: first list call reports Shutdown, later calls Booted.
		stubDir := t.TempDir()
		marker := filepath.Join(stubDir, "called")
		script := `#!/bin/sh
set -eu
if [ "$#" -ge 5 ] && [ "$1" = "simctl" ] && [ "$2" = "list" ] && [ "$3" = "devices" ] && [ "$4" = "available" ] && [ "$5" = "--json" ]; then
  if [ -f "` + marker + `" ]; then STATE=Booted; else STATE=Shutdown; touch "` + marker + `"; fi
  cat <<EOF
{"devices":{"com.apple.CoreSimulator.SimRuntime.iOS-17-2":[{"udid":"AAAA-1111","name":"iPhone 15","state":"$STATE","isAvailable":true}]}}
EOF
  exit 0
fi
exit 1
`
		require.NoError(t, os.WriteFile(filepath.Join(stubDir, "xcrun"), []byte(script), 0o755))
		t.Setenv("PATH", stubDir+string(os.PathListSeparator)+os.Getenv("PATH"))

		l := NewLauncher(NewManager(nil), nil)
		l.pollInterval = 5 * time.Millisecond

		require.NoError(t, l.WaitForBoot(context.Background(), "AAAA-1111", time.Second))
	})
}
