package notepad

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"prodp/internal/lock"
	"prodp/internal/notes"
	"prodp/internal/tui/theme"
)

// ChallengeModal shows a fresh challenge string and asks for it back.
// One modal is one attempt; a wrong answer closes it.
type ChallengeModal struct {
	Caption   string
	Challenge lock.Challenge
	Action    notes.Action
	Index     int
	Input     textinput.Model
	Width     int
}

// ChallengeResultMsg carries the typed answer for the action being gated
type ChallengeResultMsg struct {
	Action    notes.Action
	Index     int
	Challenge lock.Challenge
	Input     string
	Cancelled bool
}

// NewChallengeModal creates a modal for one attempt at action on the note at
// index. caption is the note title.
func NewChallengeModal(caption string, challenge lock.Challenge, action notes.Action, index, width int) *ChallengeModal {
	ti := textinput.New()
	ti.Placeholder = "retype the string above"
	ti.CharLimit = lock.Length * 4
	ti.Width = lock.Length + 4
	ti.Focus()

	return &ChallengeModal{
		Caption:   caption,
		Challenge: challenge,
		Action:    action,
		Index:     index,
		Input:     ti,
		Width:     width,
	}
}

// Update handles key events for the challenge modal
func (m *ChallengeModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return m.result(m.Input.Value(), false)
		case "esc":
			return m.result("", true)
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return cmd
}

func (m *ChallengeModal) result(input string, cancelled bool) tea.Cmd {
	res := ChallengeResultMsg{
		Action:    m.Action,
		Index:     m.Index,
		Challenge: m.Challenge,
		Input:     input,
		Cancelled: cancelled,
	}
	return func() tea.Msg { return res }
}

// View renders the challenge modal
func (m *ChallengeModal) View() string {
	var content string

	content += theme.ModalTitle.Render(m.Action.String()+": "+m.Caption) + "\n\n"
	content += lock.Prompt() + "\n\n"
	content += theme.Challenge.Render(m.Challenge.String()) + "\n\n"
	content += m.Input.View() + "\n\n"
	content += theme.ModalHelp.Render("[enter] submit  [esc] cancel")

	return theme.ModalBox.Width(m.Width).Render(content)
}
