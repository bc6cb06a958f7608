package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaredbothwell/isim/internal/simulator"
)

// PickCmd interactively picks a simulator
type PickCmd struct {
	Launch bool `help:"Launch the picked simulator instead of storing it as the default"`
}

// pickItem implements list.Item for the picker
type pickItem struct {
	udid        string
	title       string
	description string
}

func (i pickItem) Title() string       { return i.title }
func (i pickItem) Description() string { return i.description }
func (i pickItem) FilterValue() string { return i.title + " " + i.udid }

// pickModel is the bubbletea model for the picker
type pickModel struct {
	list     list.Model
	selected pickItem
	quitting bool
	canceled bool
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(pickItem); ok {
				m.selected = item
				m.quitting = true
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			m.canceled = true
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Run executes the pick command
func (c *PickCmd) Run(globals *Globals) error {
	// Require interactive terminal
	if !stdinIsInteractive() {
		return outputErrorCommon(globals, "NOT_INTERACTIVE",
			"isim pick requires an interactive terminal. "+
				"Use `isim list` and `isim default <udid>` for scripting.")
	}

	ctx := context.Background()
	mgr := simulator.NewManager(globals.Log)

	sims, err := mgr.List(ctx)
	if err != nil {
		return outputErrorHint(globals, "LIST_FAILED", err.Error(), hintForList(err))
	}
	if len(sims) == 0 {
		return outputErrorCommon(globals, "NO_RESULTS", "No simulators found")
	}

	items := make([]list.Item, 0, len(sims))
	for _, s := range sims {
		state := ""
		if s.IsBooted() {
			state = " (booted)"
		}
		items = append(items, pickItem{
			udid:        s.UDID,
			title:       s.Name + state,
			description: s.OS + "  " + s.UDID,
		})
	}

	selected, err := c.runPicker(items)
	if err != nil {
		return err
	}
	if selected == nil {
		// Canceled; nothing to do.
		return nil
	}

	if c.Launch {
		return launchByQuery(globals, selected.udid, false, "")
	}

	set := &DefaultCmd{UDID: selected.udid}
	return set.runSet(globals)
}

func (c *PickCmd) runPicker(items []list.Item) (*pickItem, error) {
	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 80, 20)
	l.Title = "Select Simulator"
	l.SetShowStatusBar(false)

	program := tea.NewProgram(pickModel{list: l}, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(pickModel)
	if !ok || m.canceled {
		return nil, nil
	}
	return &m.selected, nil
}
