package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"prodp/internal/notes"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewNotes ViewType = iota
	ViewReader
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// OpenNoteMsg asks the app to show a note read-only. Only sent once the
// note's lock, if any, has been passed.
type OpenNoteMsg struct {
	Note notes.Note
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

func OpenNote(n notes.Note) tea.Cmd {
	return func() tea.Msg {
		return OpenNoteMsg{Note: n}
	}
}
