package output

import (
	"io"

	"github.com/jaredbothwell/isim/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// SimulatorTable renders simulators as a table. The row for the stored
// default is marked with a star, booted devices are rendered green.
type SimulatorTable struct {
	w           io.Writer
	color       Colorizer
	defaultUDID string
}

// NewSimulatorTable creates a table renderer.
func NewSimulatorTable(w io.Writer, color Colorizer, defaultUDID string) *SimulatorTable {
	return &SimulatorTable{w: w, color: color, defaultUDID: defaultUDID}
}

// Render writes the table followed by a marker legend.
func (t *SimulatorTable) Render(sims []domain.Simulator) error {
	table := tablewriter.NewTable(t.w)
	table.Header(
		t.color.Render(Styles.Header, ""),
		t.color.Render(Styles.Header, "UDID"),
		t.color.Render(Styles.Header, "DEVICE"),
		t.color.Render(Styles.Header, "OS"),
		t.color.Render(Styles.Header, "STATE"),
	)

	for _, s := range sims {
		marker := ""
		if s.UDID == t.defaultUDID {
			marker = t.color.Render(Styles.Star, "★")
		}

		udid, name, osName, state := s.UDID, s.Name, s.OS, string(s.State)
		if s.IsBooted() {
			udid = t.color.Render(Styles.Booted, udid)
			name = t.color.Render(Styles.Booted, name)
			osName = t.color.Render(Styles.Booted, osName)
			state = t.color.Render(Styles.Booted, state)
		}

		if err := table.Append([]string{marker, udid, name, osName, state}); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	legend := "\n  " + t.color.Render(Styles.Star, "★") + " = default   " +
		t.color.Render(Styles.Booted, "green") + " = booted\n"
	_, err := io.WriteString(t.w, legend)
	return err
}
