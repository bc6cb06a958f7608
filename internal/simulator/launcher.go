package simulator

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Launcher starts the Simulator app pointed at a specific device. The
// actual boot is owned by Simulator.app; we only hand it a UDID.
type Launcher struct {
	openPath     string
	appName      string
	mgr          *Manager
	clk          clock.Clock
	pollInterval time.Duration
	log          *zap.SugaredLogger
}

// NewLauncher creates a launcher that shells out to `open`.
func NewLauncher(mgr *Manager, log *zap.SugaredLogger) *Launcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Launcher{
		openPath:     "open",
		appName:      "Simulator",
		mgr:          mgr,
		clk:          clock.New(),
		pollInterval: 2 * time.Second,
		log:          log,
	}
}

// Launch asks Simulator.app to open the device with the given UDID.
func (l *Launcher) Launch(ctx context.Context, udid string) error {
	cmd := exec.CommandContext(ctx, l.openPath, "-a", l.appName, "--args", "-CurrentDeviceUDID", udid)
	l.log.Debugw("launching simulator", "udid", udid, "cmd", cmd.String())
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to launch Simulator: %s: %w", string(output), err)
	}
	return nil
}

// WaitForBoot polls simctl until the device reports Booted or the timeout
// elapses.
func (l *Launcher) WaitForBoot(ctx context.Context, udid string, timeout time.Duration) error {
	deadline := l.clk.Now().Add(timeout)
	ticker := l.clk.Ticker(l.pollInterval)
	defer ticker.Stop()

	for {
		sim, err := l.mgr.GetDevice(ctx, udid)
		if err == nil && sim.IsBooted() {
			return nil
		}
		if l.clk.Now().After(deadline) {
			return &BootTimeoutError{UDID: udid}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
