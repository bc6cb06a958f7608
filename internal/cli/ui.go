package cli

import (
	"os"

	"github.com/jaredbothwell/isim/internal/output"
	"github.com/mattn/go-isatty"
)

// colorizer decides whether styled output is appropriate for stdout.
// Color is dropped when --no-color is set or stdout is not a terminal.
func colorizer(globals *Globals) output.Colorizer {
	if globals.NoColor {
		return output.Colorizer{}
	}
	f, ok := globals.Stdout.(*os.File)
	if !ok {
		return output.Colorizer{}
	}
	enabled := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return output.Colorizer{Enabled: enabled}
}

func stdinIsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
