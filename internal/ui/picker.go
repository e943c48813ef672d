package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickItem is one selectable fix in the interactive picker.
type PickItem struct {
	ID       string
	Title    string
	Message  string
	Location string
	Selected bool
}

type pickerModel struct {
	items    []PickItem
	cursor   int
	width    int
	accepted bool
}

// NewFixPicker returns a Bubble Tea model letting the user choose
// which fixes to apply. Read the selection with PickedIDs after the
// program finishes.
func NewFixPicker(items []PickItem) tea.Model {
	return &pickerModel{items: items, width: 80}
}

// PickedIDs extracts the confirmed selection from a finished picker.
// It returns nil when the user cancelled.
func PickedIDs(m tea.Model) []string {
	pm, ok := m.(*pickerModel)
	if !ok || !pm.accepted {
		return nil
	}
	ids := make([]string, 0, len(pm.items))
	for _, item := range pm.items {
		if item.Selected {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			if len(m.items) > 0 {
				m.items[m.cursor].Selected = !m.items[m.cursor].Selected
			}
		case "a":
			for i := range m.items {
				m.items[i].Selected = true
			}
		case "n":
			for i := range m.items {
				m.items[i].Selected = false
			}
		case "enter":
			m.accepted = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Select fixes to apply (%d available)", len(m.items))))
	b.WriteString("\n\n")

	nameWidth := m.width - 8
	if nameWidth < 20 {
		nameWidth = 20
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if item.Selected {
			box = selectedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, truncate(item.Title, nameWidth))
		b.WriteString(line)
		b.WriteString("\n")
		detail := fmt.Sprintf("       %s  %s", item.Location, item.Message)
		b.WriteString(dimStyle.Render(truncate(detail, m.width-2)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("space toggle · a all · n none · enter apply · q cancel"))
	b.WriteString("\n")
	return b.String()
}
