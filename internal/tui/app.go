package tui

import (
	"prodp/internal/config"
	"prodp/internal/logs"
	"prodp/internal/notes/service"
	"prodp/internal/tui/notepad"
	"prodp/internal/tui/shared"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var globalKeys = []key.Binding{
	key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Show this help")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "Force quit")),
}

var readerKeys = []key.Binding{
	key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j / k", "Scroll")),
	key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc / q", "Back to notes")),
}

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg         *config.Config
	svc         service.NoteService
	currentView ViewType
	notesView   notepad.ManagerModel
	readerView  notepad.ViewerModel
	readerOpen  bool // true when readerView holds a note
	showHelp    bool
	width       int
	height      int
	ready       bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, svc service.NoteService) AppModel {
	return AppModel{
		cfg:         cfg,
		svc:         svc,
		currentView: ViewNotes,
		notesView:   notepad.NewManagerModel(svc, cfg),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) contentHeight() int {
	// banner (2) and status bar (2)
	return max(1, m.height-4)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.notesView.SetSize(msg.Width, m.contentHeight())
		if m.readerOpen {
			m.readerView.SetSize(msg.Width, m.contentHeight())
		}
		return m, nil

	case OpenNoteMsg:
		m.readerView = notepad.NewViewerModel(msg.Note, m.width, m.contentHeight())
		m.readerOpen = true
		m.currentView = ViewReader
		logs.Logger.Debug().Str("title", msg.Note.Title).Msg("opened note")
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		if msg.View == ViewNotes {
			m.readerOpen = false
		}
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// The reader owns q (back) and modals own every key
		if m.currentView == ViewNotes && !m.notesView.IsInModalState() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewNotes:
		m.notesView, cmd = m.notesView.Update(msg)
		return m, cmd
	case ViewReader:
		if m.readerOpen {
			m.readerView, cmd = m.readerView.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup([]shared.HelpSection{
			{Title: "Global", Binds: globalKeys},
			{Title: "Notes", Binds: notepad.HelpBindings()},
			{Title: "Reader", Binds: readerKeys},
		}, m.width, m.height)
	}

	var content string
	switch m.currentView {
	case ViewNotes:
		content = m.notesView.View()
	case ViewReader:
		if m.readerOpen {
			content = m.readerView.View()
		} else {
			content = HelpStyle.Render("No note open")
		}
	}

	banner := BannerStyle.Width(m.width).Render("Productivity Notepad  " + HelpStyle.Render(m.svc.Path()))

	var statusText string
	switch {
	case m.currentView == ViewReader:
		statusText = "Reader | esc: back | ctrl+c: quit"
	case m.notesView.IsInModalState():
		statusText = "esc: cancel"
	default:
		statusText = m.notesView.HintText() + " | ?:help | q:quit"
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, banner, content, statusBar)
}
