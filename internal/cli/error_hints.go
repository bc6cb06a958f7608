package cli

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/jaredbothwell/isim/internal/simulator"
)

func hintForDeviceLookup(err error) string {
	if err == nil {
		return ""
	}

	var nf *simulator.NotFoundError
	if errors.As(err, &nf) {
		return "Run `isim list` to see available simulators"
	}

	return ""
}

func hintForTooling(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// Common xcrun/Xcode-select problems.
	if strings.Contains(msg, "invalid active developer path") {
		return "Xcode CLI tools not configured; run `xcode-select --install` or `sudo xcode-select -s /Applications/Xcode.app/Contents/Developer` (then `isim doctor`)"
	}

	if isCommandNotFound(err, "xcrun") {
		return "xcrun not found; install Xcode Command Line Tools with `xcode-select --install` (then `isim doctor`)"
	}
	if isCommandNotFound(err, "open") {
		return "the `open` command is macOS-only; isim launches simulators through Simulator.app"
	}

	return ""
}

func hintForList(err error) string {
	if err == nil {
		return ""
	}
	if h := hintForTooling(err); h != "" {
		return h
	}
	return "Run `isim doctor` for diagnostics"
}

func isCommandNotFound(err error, name string) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, exec.ErrNotFound) && name == "" {
		return true
	}

	var ee *exec.Error
	if errors.As(err, &ee) && strings.EqualFold(ee.Name, name) && errors.Is(ee.Err, exec.ErrNotFound) {
		return true
	}

	var pe *os.PathError
	if errors.As(err, &pe) && errors.Is(pe.Err, exec.ErrNotFound) {
		if strings.EqualFold(pe.Path, name) || strings.HasSuffix(pe.Path, string(os.PathSeparator)+name) {
			return true
		}
	}

	// Fallback to string matching for wrapped errors.
	msg := err.Error()
	if strings.Contains(msg, "executable file not found") && strings.Contains(msg, name) {
		return true
	}
	if strings.Contains(msg, "No such file or directory") && strings.Contains(msg, name) {
		return true
	}

	return false
}
