package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel asks a free-text yes/no question.
type ConfirmModel struct {
	question string
	input    textinput.Model
	answer   string
	done     bool
	aborted  bool
}

// NewConfirmModel constructs a focused text prompt for question.
func NewConfirmModel(question string) *ConfirmModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "yes / no"
	input.CharLimit = 16
	input.Focus()
	return &ConfirmModel{question: question, input: input}
}

// Init implements tea.Model.
func (m *ConfirmModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.answer = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *ConfirmModel) View() string {
	if m.done {
		return titleStyle.Render(m.question) + " " + selectedStyle.Render(m.answer) + "\n"
	}
	if m.aborted {
		return ""
	}
	return titleStyle.Render(m.question) + "\n" + m.input.View() + "\n"
}

// Answer returns the submitted text. ok is false when the prompt was left.
func (m *ConfirmModel) Answer() (answer string, ok bool) {
	return m.answer, m.done
}

// IsYes reports whether answer asks for a restart.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
