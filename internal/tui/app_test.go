package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodp/internal/config"
	"prodp/internal/notes"
	"prodp/internal/notes/service"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, notes.WriteFile(path, []notes.Note{
		{Title: "Groceries", Content: "milk"},
	}))
	svc, err := service.NewNoteService(path)
	require.NoError(t, err)

	m := NewAppModel(&config.Config{NotesFile: path}, svc)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(AppModel)
}

func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestAppLoadingBeforeSize(t *testing.T) {
	svc, err := service.NewNoteService(filepath.Join(t.TempDir(), "notes.json"))
	require.NoError(t, err)
	m := NewAppModel(&config.Config{}, svc)
	assert.Equal(t, "Loading...", m.View())
}

func TestAppOpenAndCloseReader(t *testing.T) {
	m := newTestApp(t)

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())
	assert.Equal(t, ViewReader, m.currentView)
	assert.Contains(t, m.View(), "milk")

	// q goes back from the reader instead of quitting
	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())
	assert.Equal(t, ViewNotes, m.currentView)
}

func TestAppHelpOverlay(t *testing.T) {
	m := newTestApp(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Lock note")

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, m.showHelp)
	assert.Nil(t, cmd, "closing help must not quit")
}

func TestAppQuitKeys(t *testing.T) {
	m := newTestApp(t)

	_, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppModalKeepsQ(t *testing.T) {
	m := newTestApp(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.True(t, m.notesView.IsInModalState())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, m.notesView.IsInModalState(), "q is typed into the editor")
}
