package notepad

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"prodp/internal/notes"
	"prodp/internal/tui/theme"
)

// ActionMenuModel is the per-note context menu. It only offers the actions
// the note's lock state allows.
type ActionMenuModel struct {
	title   string
	index   int
	actions []notes.Action
	cursor  int
	width   int
}

// ActionChosenMsg is sent when an action is picked from the menu
type ActionChosenMsg struct {
	Action    notes.Action
	Index     int
	Cancelled bool
}

// NewActionMenu builds the menu for note at index
func NewActionMenu(note notes.Note, index, width int) *ActionMenuModel {
	return &ActionMenuModel{
		title:   note.Title,
		index:   index,
		actions: notes.ActionsFor(note),
		width:   width,
	}
}

// Update handles navigation and selection
func (m *ActionMenuModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		action, index := m.actions[m.cursor], m.index
		return func() tea.Msg { return ActionChosenMsg{Action: action, Index: index} }
	case "esc", "q", "m":
		index := m.index
		return func() tea.Msg { return ActionChosenMsg{Index: index, Cancelled: true} }
	}
	return nil
}

// View renders the menu
func (m *ActionMenuModel) View() string {
	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(m.title) + "\n\n")
	for i, a := range m.actions {
		if i == m.cursor {
			b.WriteString(theme.Cursor.Render("> ") + theme.SelectedBg.Render(a.String()) + "\n")
		} else {
			b.WriteString("  " + a.String() + "\n")
		}
	}
	b.WriteString("\n" + theme.ModalHelp.Render("[j/k] move  [enter] choose  [esc] close"))
	return theme.ModalBox.Width(m.width).Render(b.String())
}
