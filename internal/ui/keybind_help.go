package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// Returns "" when the handler is not waiting for a leader sequence.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	boxStyle := Styles.BoxCompact.MarginTop(1)
	content := Styles.Muted.Render(keyHandler.CurrentSeq()) + " " + helpModel.ShortHelpView(bindings)
	return boxStyle.Render(content)
}
