package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for errors, unavailable items
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorSuccess   = "42"  // Green - for available items
	ColorWarning   = "208" // Orange - for prices
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for edit dialog titles

	Box        lipgloss.Style // Standard box with rounded border
	BoxCompact lipgloss.Style // Compact box with less padding

	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Normal    lipgloss.Style
	Hint      lipgloss.Style
	Status    lipgloss.Style // Status line (accent color)
	Error     lipgloss.Style // Status line after a failed operation
	Empty     lipgloss.Style // Empty state text (muted, italic)
	Label     lipgloss.Style // Form field labels
	Price     lipgloss.Style
	Available lipgloss.Style
	Sold      lipgloss.Style // Unavailable items
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Width(13),
	Price: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Available: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Sold: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}

// NewFoodListDelegate returns the list delegate used by the food list:
// two lines per item (name/price, then availability/description).
func NewFoodListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(1)
	d.ShowDescription = true
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(lipgloss.Color(ColorHighlight)).
		BorderForeground(lipgloss.Color(ColorHighlight))
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(lipgloss.Color(ColorText)).
		BorderForeground(lipgloss.Color(ColorHighlight))
	d.Styles.NormalDesc = Styles.Muted.Padding(0, 0, 0, 2)
	return d
}
