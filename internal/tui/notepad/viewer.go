package notepad

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prodp/internal/notes"
	"prodp/internal/tui/messages"
	"prodp/internal/tui/theme"
)

// ViewerModel shows one note read-only
type ViewerModel struct {
	note     notes.Note
	viewport viewport.Model
	width    int
	height   int
}

// NewViewerModel creates a viewer for note
func NewViewerModel(note notes.Note, width, height int) ViewerModel {
	m := ViewerModel{
		note:     note,
		viewport: viewport.New(width, height),
	}
	m.SetSize(width, height)
	return m
}

// SetSize updates the view dimensions
func (m *ViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	// header (2 lines) and footer (1 line)
	m.viewport.Width = width
	m.viewport.Height = max(1, height-3)
	m.viewport.SetContent(lipgloss.NewStyle().Width(width).Render(m.note.Content))
}

// Update scrolls the note, esc or q returns to the list
func (m ViewerModel) Update(msg tea.Msg) (ViewerModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "backspace":
			return m, messages.SwitchView(messages.ViewNotes)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer
func (m ViewerModel) View() string {
	header := theme.Title.Render(m.note.Title)
	if m.note.Locked {
		header += " " + theme.Locked.Render("[locked]")
	}

	footer := theme.HelpHint.Render(fmt.Sprintf("%3.f%%  j/k: scroll  esc: back", m.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer)
}
