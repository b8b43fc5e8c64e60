package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"prodp/internal/tui/theme"
)

// HelpSection is a titled group of key bindings
type HelpSection struct {
	Title string
	Binds []key.Binding
}

var (
	helpSectionStyle = theme.Title
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = theme.ModalBox
	helpDismissStyle = theme.HelpHint
)

// RenderHelpPopup renders a centered help popup listing each binding's help
// text. Disabled bindings are skipped.
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			if !bind.Enabled() {
				continue
			}
			h := bind.Help()
			b.WriteString("  " + helpKeyStyle.Width(14).Render(h.Key) + helpDescStyle.Render(h.Desc) + "\n")
		}
	}

	b.WriteString("\n" + helpDismissStyle.Render("Press any key to close"))

	box := helpBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// ShortHelp renders bindings on one line as "key desc  key desc"
func ShortHelp(binds ...key.Binding) string {
	parts := make([]string, 0, len(binds))
	for _, bind := range binds {
		if !bind.Enabled() {
			continue
		}
		h := bind.Help()
		parts = append(parts, h.Key+":"+h.Desc)
	}
	return strings.Join(parts, "  ")
}
