package tui

import "prodp/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewNotes  = messages.ViewNotes
	ViewReader = messages.ViewReader
)

type SwitchViewMsg = messages.SwitchViewMsg
type OpenNoteMsg = messages.OpenNoteMsg
