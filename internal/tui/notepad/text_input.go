package notepad

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prodp/internal/tui/theme"
)

var (
	inputPromptStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	inputErrorStyle  = lipgloss.NewStyle().Foreground(theme.Danger)
	inputBoxStyle    = theme.InputBox
)

// inputPurpose says what a TextInputModel's value will be used for
type inputPurpose int

const (
	purposeExportPath inputPurpose = iota
	purposeImportPath
	purposeImportTitle
)

// TextInputModel wraps bubbles/textinput with validation
type TextInputModel struct {
	Input     textinput.Model
	Prompt    string
	Validator func(string) error
	Error     string
	Width     int

	purpose inputPurpose
	index   int
}

// TextInputResultMsg is sent when input is confirmed or cancelled
type TextInputResultMsg struct {
	Value     string
	Cancelled bool

	purpose inputPurpose
	index   int
}

// NewTextInput creates a new text input component
func NewTextInput(prompt, placeholder string, validator func(string) error) *TextInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 1024
	return &TextInputModel{
		Input:     ti,
		Prompt:    prompt,
		Validator: validator,
	}
}

// Update implements tea.Model
func (m *TextInputModel) Update(msg tea.Msg) (*TextInputModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if m.Validator != nil {
				if err := m.Validator(m.Input.Value()); err != nil {
					m.Error = err.Error()
					return m, nil
				}
			}
			value, purpose, index := m.Input.Value(), m.purpose, m.index
			return m, func() tea.Msg {
				return TextInputResultMsg{Value: value, purpose: purpose, index: index}
			}

		case "esc":
			purpose, index := m.purpose, m.index
			return m, func() tea.Msg {
				return TextInputResultMsg{Cancelled: true, purpose: purpose, index: index}
			}
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	// Clear error when user types
	if _, ok := msg.(tea.KeyMsg); ok {
		m.Error = ""
	}

	return m, cmd
}

// View implements tea.Model
func (m *TextInputModel) View() string {
	var content string

	content += inputPromptStyle.Render(m.Prompt+": ") + m.Input.View() + "\n"

	if m.Error != "" {
		content += inputErrorStyle.Render("Error: "+m.Error) + "\n"
	}

	content += theme.HelpHint.Render("[enter] confirm  [esc] cancel")

	return inputBoxStyle.Width(m.Width).Render(content)
}

// SetValue sets the input value and moves the cursor to the end
func (m *TextInputModel) SetValue(v string) {
	m.Input.SetValue(v)
	m.Input.CursorEnd()
}

// SetWidth sets both the outer box and inner input widths
func (m *TextInputModel) SetWidth(w int) {
	// Account for border (2) and padding (2)
	m.Width = w - 4
	m.Input.Width = m.Width - lipgloss.Width(m.Prompt+": ") - 1
}

// ValidatePath refuses blank paths
func ValidatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("path is required")
	}
	return nil
}
