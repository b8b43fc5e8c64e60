package notepad

import (
	tea "github.com/charmbracelet/bubbletea"

	"prodp/internal/notes"
	"prodp/internal/tui/theme"
)

var (
	confirmModalBoxStyle = theme.ModalBox
	confirmTitleStyle    = theme.ModalTitle
	confirmYesStyle      = theme.Ok
	confirmNoStyle       = theme.Error
)

// ConfirmationModal displays a yes/no question about one note action.
// "No" is the default: enter alone does not confirm.
type ConfirmationModal struct {
	Title   string
	Message string
	Action  notes.Action
	Index   int
	Width   int
}

// ConfirmationResultMsg is sent when the user answers
type ConfirmationResultMsg struct {
	Action    notes.Action
	Index     int
	Confirmed bool
}

// NewConfirmationModal creates a new confirmation modal
func NewConfirmationModal(title, message string, action notes.Action, index, width int) *ConfirmationModal {
	return &ConfirmationModal{
		Title:   title,
		Message: message,
		Action:  action,
		Index:   index,
		Width:   width,
	}
}

// Update handles key events for the confirmation modal
func (m *ConfirmationModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		return m.result(true)
	case "n", "N", "esc", "enter":
		return m.result(false)
	}
	return nil
}

func (m *ConfirmationModal) result(confirmed bool) tea.Cmd {
	action, index := m.Action, m.Index
	return func() tea.Msg {
		return ConfirmationResultMsg{Action: action, Index: index, Confirmed: confirmed}
	}
}

// View renders the confirmation modal
func (m *ConfirmationModal) View() string {
	var content string

	content += confirmTitleStyle.Render(m.Title) + "\n\n"
	content += m.Message + "\n\n"
	content += confirmYesStyle.Render("[y]") + " Yes  "
	content += confirmNoStyle.Render("[n/esc]") + " No"

	return confirmModalBoxStyle.Width(m.Width).Render(content)
}
