package notepad

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"prodp/internal/tui/theme"
)

type editorField int

const (
	fieldTitle editorField = iota
	fieldContent
)

// NoteEditorModel edits a note's title and content. index is -1 for a new
// note.
type NoteEditorModel struct {
	titleInput   textinput.Model
	contentInput textarea.Model
	focused      editorField
	index        int
	err          string
	width        int
	height       int
}

// NoteEditorResultMsg is sent when the editor is saved or cancelled
type NoteEditorResultMsg struct {
	Index     int
	Title     string
	Content   string
	Cancelled bool
}

// NewNoteEditor creates an editor. Pass index -1 to create a note.
func NewNoteEditor(index int, title, content string, width, height int) *NoteEditorModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256
	ti.SetValue(title)
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Content"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(content)
	ta.Blur()

	m := &NoteEditorModel{
		titleInput:   ti,
		contentInput: ta,
		focused:      fieldTitle,
		index:        index,
	}
	m.SetSize(width, height)
	return m
}

// IsNew reports whether the editor is creating a note
func (m *NoteEditorModel) IsNew() bool {
	return m.index < 0
}

// SetSize fits the editor to the available area
func (m *NoteEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	m.titleInput.Width = inner - len("Title: ")
	m.contentInput.SetWidth(inner)

	// title row, labels, hints and box chrome
	rows := height - 10
	if rows < 3 {
		rows = 3
	}
	m.contentInput.SetHeight(rows)
}

// Update handles input for the focused field
func (m *NoteEditorModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			index := m.index
			return func() tea.Msg {
				return NoteEditorResultMsg{Index: index, Cancelled: true}
			}
		case "ctrl+s":
			return m.submit()
		case "tab", "shift+tab":
			m.toggleFocus()
			return nil
		case "enter":
			if m.focused == fieldTitle {
				m.toggleFocus()
				return nil
			}
		}
		m.err = ""
	}

	var cmd tea.Cmd
	if m.focused == fieldTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return cmd
}

func (m *NoteEditorModel) toggleFocus() {
	if m.focused == fieldTitle {
		m.focused = fieldContent
		m.titleInput.Blur()
		m.contentInput.Focus()
		return
	}
	m.focused = fieldTitle
	m.contentInput.Blur()
	m.titleInput.Focus()
}

func (m *NoteEditorModel) submit() tea.Cmd {
	title := m.titleInput.Value()
	content := m.contentInput.Value()

	if strings.TrimSpace(title) == "" {
		m.err = "title is required"
		return nil
	}
	if content == "" {
		m.err = "content is required"
		return nil
	}

	index := m.index
	return func() tea.Msg {
		return NoteEditorResultMsg{Index: index, Title: title, Content: content}
	}
}

// View renders the editor
func (m *NoteEditorModel) View() string {
	heading := "Edit Note"
	if m.IsNew() {
		heading = "Add Note"
	}

	titleLabel, contentLabel := theme.FieldInactive, theme.FieldInactive
	if m.focused == fieldTitle {
		titleLabel = theme.FieldActive
	} else {
		contentLabel = theme.FieldActive
	}

	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(heading) + "\n\n")
	b.WriteString(titleLabel.Render("Title: ") + m.titleInput.View() + "\n\n")
	b.WriteString(contentLabel.Render("Content:") + "\n")
	b.WriteString(m.contentInput.View() + "\n")
	if m.err != "" {
		b.WriteString(theme.Error.Render("Error: "+m.err) + "\n")
	}
	b.WriteString(theme.ModalHelp.Render("[tab] switch field  [ctrl+s] save  [esc] cancel"))

	return theme.InputBox.Width(m.width - 2).Render(b.String())
}
