// Package menu provides the interactive filter menus and the restart prompt.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

const choiceHelp = "↑/k up · ↓/j down · enter choose · q quit"

// ChoiceModel is a Bubble Tea single-choice list.
type ChoiceModel struct {
	title   string
	options []string
	cursor  int
	chosen  int
	aborted bool
}

// NewChoiceModel constructs a list over options with the cursor on the first entry.
func NewChoiceModel(title string, options []string) *ChoiceModel {
	return &ChoiceModel{
		title:   title,
		options: options,
		chosen:  -1,
	}
}

// Init implements tea.Model.
func (m *ChoiceModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ChoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.options) - 1
	case "enter", " ":
		if len(m.options) == 0 {
			return m, nil
		}
		m.chosen = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *ChoiceModel) View() string {
	if m.aborted {
		return ""
	}
	if m.chosen >= 0 {
		return titleStyle.Render(m.title) + " " + selectedStyle.Render(m.options[m.chosen]) + "\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + option))
		} else {
			b.WriteString(optionStyle.Render("  " + option))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(choiceHelp))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the selected index. ok is false until enter was pressed.
func (m *ChoiceModel) Chosen() (index int, ok bool) {
	return m.chosen, m.chosen >= 0
}

// Aborted reports whether the user left the menu without choosing.
func (m *ChoiceModel) Aborted() bool {
	return m.aborted
}

func (m *ChoiceModel) move(delta int) {
	if len(m.options) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.options) {
		m.cursor = len(m.options) - 1
	}
}
