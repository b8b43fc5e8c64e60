package notepad

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prodp/internal/config"
	"prodp/internal/lock"
	"prodp/internal/logs"
	"prodp/internal/notes"
	"prodp/internal/notes/service"
	"prodp/internal/tui/messages"
	"prodp/internal/tui/shared"
	"prodp/internal/tui/theme"
)

var (
	cursorStyle  = theme.Cursor
	warningStyle = theme.Warn
	infoStyle    = theme.Ok
)

// clipboardWrite is replaced in tests
var clipboardWrite = clipboard.WriteAll

// clipboardResultMsg reports the outcome of a copy
type clipboardResultMsg struct {
	title string
	err   error
}

// ManagerModel is the note list with its modals. All store access happens
// synchronously inside Update.
type ManagerModel struct {
	svc service.NoteService
	cfg *config.Config

	items  []notes.Note
	cursor int

	// Sub-components, at most one is open
	confirmationModal *ConfirmationModal
	challengeModal    *ChallengeModal
	textInput         *TextInputModel
	editor            *NoteEditorModel
	actionMenu        *ActionMenuModel

	// import is two steps: path then title
	pendingImportPath string

	status        string
	statusWarning bool

	newChallenge func() lock.Challenge

	width  int
	height int
}

// NewManagerModel creates the note list view
func NewManagerModel(svc service.NoteService, cfg *config.Config) ManagerModel {
	m := ManagerModel{
		svc:          svc,
		cfg:          cfg,
		newChallenge: lock.NewChallenge,
	}
	m.refresh()
	return m
}

// SetSize updates the view dimensions
func (m *ManagerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.editor != nil {
		m.editor.SetSize(width, height)
	}
	if m.textInput != nil {
		m.textInput.SetWidth(m.modalWidth())
	}
}

// Reload rereads the store from disk
func (m *ManagerModel) Reload() {
	if err := m.svc.Reload(); err != nil {
		logs.Logger.Error().Err(err).Msg("reload failed")
		m.warn(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	m.refresh()
	m.info("Reloaded " + m.svc.Path())
}

// IsInModalState reports whether a modal has the keyboard
func (m ManagerModel) IsInModalState() bool {
	return m.confirmationModal != nil || m.challengeModal != nil ||
		m.textInput != nil || m.editor != nil || m.actionMenu != nil
}

func (m *ManagerModel) refresh() {
	m.items = m.svc.List()
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

func (m *ManagerModel) warn(s string) {
	m.status = s
	m.statusWarning = true
}

func (m *ManagerModel) info(s string) {
	m.status = s
	m.statusWarning = false
}

func (m ManagerModel) modalWidth() int {
	return min(max(m.width-10, 30), 72)
}

// Update handles messages for the note list
func (m ManagerModel) Update(msg tea.Msg) (ManagerModel, tea.Cmd) {
	// Handle sub-component results first
	switch msg := msg.(type) {
	case ConfirmationResultMsg:
		m.confirmationModal = nil
		return m.handleConfirmation(msg)
	case ChallengeResultMsg:
		m.challengeModal = nil
		return m.handleChallenge(msg)
	case NoteEditorResultMsg:
		m.editor = nil
		return m.handleEditorResult(msg)
	case TextInputResultMsg:
		m.textInput = nil
		return m.handleTextInput(msg)
	case ActionChosenMsg:
		m.actionMenu = nil
		if msg.Cancelled {
			return m, nil
		}
		return m.dispatch(msg.Action, msg.Index)
	case clipboardResultMsg:
		if msg.err != nil {
			m.warn(fmt.Sprintf("Copy failed: %v", msg.err))
		} else {
			m.info("Copied " + msg.title)
		}
		return m, nil
	}

	// Handle sub-component updates
	if m.confirmationModal != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m, m.confirmationModal.Update(keyMsg)
		}
		return m, nil
	}
	if m.actionMenu != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m, m.actionMenu.Update(keyMsg)
		}
		return m, nil
	}
	if m.challengeModal != nil {
		return m, m.challengeModal.Update(msg)
	}
	if m.textInput != nil {
		_, cmd := m.textInput.Update(msg)
		return m, cmd
	}
	if m.editor != nil {
		return m, m.editor.Update(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleNormalMode(keyMsg)
	}
	return m, nil
}

func (m ManagerModel) handleNormalMode(msg tea.KeyMsg) (ManagerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.top):
		m.cursor = 0
		return m, nil
	case key.Matches(msg, keys.bottom):
		m.cursor = max(0, len(m.items)-1)
		return m, nil
	case key.Matches(msg, keys.newNote):
		m.status = ""
		m.editor = NewNoteEditor(-1, "", "", m.width, m.height)
		return m, nil
	case key.Matches(msg, keys.importTx):
		m.status = ""
		m.openTextInput("Import text file", "path/to/file.txt", "", ValidatePath, purposeImportPath, -1)
		return m, nil
	case key.Matches(msg, keys.reload):
		m.Reload()
		return m, nil
	}

	if len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.view):
		return m.dispatch(notes.ActionView, m.cursor)
	case key.Matches(msg, keys.menu):
		m.actionMenu = NewActionMenu(m.items[m.cursor], m.cursor, m.modalWidth())
		return m, nil
	case key.Matches(msg, keys.edit):
		return m.dispatch(notes.ActionEdit, m.cursor)
	case key.Matches(msg, keys.delete):
		return m.dispatch(notes.ActionDelete, m.cursor)
	case key.Matches(msg, keys.lock):
		return m.dispatch(notes.ActionLock, m.cursor)
	case key.Matches(msg, keys.unlock):
		return m.dispatch(notes.ActionUnlock, m.cursor)
	case key.Matches(msg, keys.save):
		return m.dispatch(notes.ActionSaveAsText, m.cursor)
	case key.Matches(msg, keys.copy):
		return m.dispatch(notes.ActionCopy, m.cursor)
	}
	return m, nil
}

// dispatch runs action against the note at index. Actions the note's lock
// state does not offer are refused with a warning.
func (m ManagerModel) dispatch(action notes.Action, index int) (ManagerModel, tea.Cmd) {
	note, err := m.svc.Get(index)
	if err != nil {
		m.warn(err.Error())
		return m, nil
	}

	if !notes.Allowed(note, action) {
		if action == notes.ActionUnlock {
			m.warn("Note Unlocked: this note is already unlocked.")
		} else {
			m.warn(fmt.Sprintf("%q is locked. Unlock it first.", note.Title))
		}
		return m, nil
	}
	m.status = ""

	switch action {
	case notes.ActionView:
		if note.Locked {
			m.openChallenge(note, action, index)
			return m, nil
		}
		return m, messages.OpenNote(note)

	case notes.ActionEdit:
		m.editor = NewNoteEditor(index, note.Title, note.Content, m.width, m.height)
		return m, nil

	case notes.ActionDelete:
		if m.cfg != nil && m.cfg.DisableConfirmation {
			return m.deleteNote(index)
		}
		m.confirmationModal = NewConfirmationModal("Confirm Delete",
			"Are you sure you want to delete this note?", action, index, m.modalWidth())
		return m, nil

	case notes.ActionLock:
		m.confirmationModal = NewConfirmationModal("Confirm Lock",
			"Are you sure you want to lock this note?", action, index, m.modalWidth())
		return m, nil

	case notes.ActionUnlock:
		m.openChallenge(note, action, index)
		return m, nil

	case notes.ActionSaveAsText:
		m.openTextInput("Save as text", "note.txt", service.DefaultExportName(note), ValidatePath, purposeExportPath, index)
		return m, nil

	case notes.ActionCopy:
		content, title := note.Content, note.Title
		return m, func() tea.Msg {
			return clipboardResultMsg{title: title, err: clipboardWrite(content)}
		}
	}
	return m, nil
}

func (m *ManagerModel) openChallenge(note notes.Note, action notes.Action, index int) {
	m.challengeModal = NewChallengeModal(note.Title, m.newChallenge(), action, index, m.modalWidth())
}

func (m *ManagerModel) openTextInput(prompt, placeholder, value string, validator func(string) error, purpose inputPurpose, index int) {
	ti := NewTextInput(prompt, placeholder, validator)
	ti.purpose = purpose
	ti.index = index
	if value != "" {
		ti.SetValue(value)
	}
	ti.SetWidth(m.modalWidth())
	m.textInput = ti
}

func (m ManagerModel) handleConfirmation(msg ConfirmationResultMsg) (ManagerModel, tea.Cmd) {
	if !msg.Confirmed {
		return m, nil
	}

	switch msg.Action {
	case notes.ActionDelete:
		return m.deleteNote(msg.Index)
	case notes.ActionLock:
		if err := m.svc.Lock(msg.Index); err != nil {
			m.reportError("Lock", err)
			return m, nil
		}
		m.refresh()
		m.info("Locked " + m.titleAt(msg.Index))
	}
	return m, nil
}

func (m ManagerModel) handleChallenge(msg ChallengeResultMsg) (ManagerModel, tea.Cmd) {
	if msg.Cancelled {
		return m, nil
	}

	switch msg.Action {
	case notes.ActionView:
		note, err := m.svc.View(msg.Index, msg.Challenge, msg.Input)
		if err != nil {
			m.reportError("View", err)
			return m, nil
		}
		return m, messages.OpenNote(note)

	case notes.ActionUnlock:
		if err := m.svc.Unlock(msg.Index, msg.Challenge, msg.Input); err != nil {
			m.reportError("Unlock", err)
			return m, nil
		}
		m.refresh()
		m.info("Unlocked " + m.titleAt(msg.Index))
	}
	return m, nil
}

func (m ManagerModel) handleEditorResult(msg NoteEditorResultMsg) (ManagerModel, tea.Cmd) {
	if msg.Cancelled {
		return m, nil
	}

	if msg.Index < 0 {
		if _, err := m.svc.Add(msg.Title, msg.Content); err != nil {
			m.reportError("Add", err)
			return m, nil
		}
		m.refresh()
		m.cursor = len(m.items) - 1
		m.info("Added " + msg.Title)
		return m, nil
	}

	if err := m.svc.Edit(msg.Index, msg.Title, msg.Content); err != nil {
		m.reportError("Edit", err)
		return m, nil
	}
	m.refresh()
	m.info("Saved " + msg.Title)
	return m, nil
}

func (m ManagerModel) handleTextInput(msg TextInputResultMsg) (ManagerModel, tea.Cmd) {
	if msg.Cancelled {
		m.pendingImportPath = ""
		return m, nil
	}

	switch msg.purpose {
	case purposeExportPath:
		path := strings.TrimSpace(msg.Value)
		if err := m.svc.ExportText(msg.index, path); err != nil {
			m.reportError("Save as text", err)
			return m, nil
		}
		m.info("Saved to " + path)

	case purposeImportPath:
		m.pendingImportPath = strings.TrimSpace(msg.Value)
		m.openTextInput("Note title", "empty: derive from the file", "", nil, purposeImportTitle, -1)

	case purposeImportTitle:
		path := m.pendingImportPath
		m.pendingImportPath = ""
		note, err := m.svc.ImportText(path, msg.Value)
		if err != nil {
			m.reportError("Import", err)
			return m, nil
		}
		m.refresh()
		m.cursor = len(m.items) - 1
		m.info(fmt.Sprintf("Imported %s as %q", filepath.Base(path), note.Title))
	}
	return m, nil
}

func (m ManagerModel) deleteNote(index int) (ManagerModel, tea.Cmd) {
	title := m.titleAt(index)
	if err := m.svc.Delete(index); err != nil {
		m.reportError("Delete", err)
		return m, nil
	}
	m.refresh()
	m.info("Deleted " + title)
	return m, nil
}

func (m *ManagerModel) reportError(op string, err error) {
	switch {
	case errors.Is(err, service.ErrChallengeFailed):
		m.warn("Incorrect String: The string you entered is incorrect. Please try again.")
	default:
		logs.Logger.Error().Err(err).Str("op", op).Msg("note operation failed")
		m.warn(fmt.Sprintf("%s failed: %v", op, err))
	}
}

func (m ManagerModel) titleAt(index int) string {
	if index >= 0 && index < len(m.items) {
		return m.items[index].Title
	}
	return "note"
}

// HintText returns hint text for the current state
func (m ManagerModel) HintText() string {
	if m.IsInModalState() {
		return ""
	}
	return shared.ShortHelp(keys.newNote, keys.view, keys.menu, keys.edit, keys.delete, keys.lock, keys.unlock)
}

// View renders the note list or the open modal
func (m ManagerModel) View() string {
	switch {
	case m.editor != nil:
		return m.editor.View()
	case m.confirmationModal != nil:
		return m.placeModal(m.confirmationModal.View())
	case m.challengeModal != nil:
		return m.placeModal(m.challengeModal.View())
	case m.actionMenu != nil:
		return m.placeModal(m.actionMenu.View())
	case m.textInput != nil:
		return m.placeModal(m.textInput.View())
	}

	var b strings.Builder
	if len(m.items) == 0 {
		b.WriteString(theme.Muted.Render("  No notes yet. Press n to add one."))
	} else {
		// each note takes two rows
		start, end := shared.Window(len(m.items), m.cursor, max(1, (m.height-2)/2))
		for i := start; i < end; i++ {
			b.WriteString(m.renderNote(i, m.items[i]))
		}
	}

	var statusLine string
	if m.status != "" {
		if m.statusWarning {
			statusLine = warningStyle.Render(m.status)
		} else {
			statusLine = infoStyle.Render(m.status)
		}
	}

	return shared.PinHints(b.String(), statusLine, m.height)
}

func (m ManagerModel) renderNote(i int, n notes.Note) string {
	prefix := "  "
	title := n.Title
	if i == m.cursor {
		prefix = cursorStyle.Render("> ")
		title = theme.SelectedBg.Render(title)
	}

	marker := ""
	detail := theme.Preview.Render(notes.Preview(n.Content))
	if n.Locked {
		marker = " " + theme.Locked.Render("[locked]")
		detail = theme.Preview.Render("content hidden")
	}

	return prefix + title + marker + "\n    " + detail + "\n"
}

func (m ManagerModel) placeModal(modal string) string {
	return lipgloss.Place(m.width, max(m.height, lipgloss.Height(modal)),
		lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}
