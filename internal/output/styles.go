package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	// Table styles
	Header    lipgloss.Style
	Separator lipgloss.Style
	Booted    lipgloss.Style
	Star      lipgloss.Style

	// Message styles
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	OS      lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}{
	Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // Cyan bold
	Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("239")),            // Gray
	Booted:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),             // Green
	Star:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // Yellow-orange

	Bold:    lipgloss.NewStyle().Bold(true),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	OS:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// Colorizer applies styles when enabled and passes text through otherwise,
// so piped output stays free of escape sequences.
type Colorizer struct {
	Enabled bool
}

// Render applies style to s when color is enabled.
func (c Colorizer) Render(style lipgloss.Style, s string) string {
	if !c.Enabled {
		return s
	}
	return style.Render(s)
}
