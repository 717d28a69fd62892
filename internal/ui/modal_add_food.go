package ui

import (
	"foodadmin/internal/food"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AddFoodModal is the dialog for creating a food.
type AddFoodModal struct {
	form foodForm
}

// Ensure AddFoodModal implements View.
var _ View = (*AddFoodModal)(nil)

// NewAddFoodModal creates an empty add dialog with the name field focused.
func NewAddFoodModal() *AddFoodModal {
	return &AddFoodModal{form: newFoodForm(food.Draft{})}
}

// Init implements View.
func (m *AddFoodModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *AddFoodModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{Dialog: dialogAdd} }
		case "enter":
			d := m.form.draft()
			return m, func() tea.Msg { return SubmitAddFoodMsg{Draft: d} }
		}
	}
	return m, m.form.update(msg)
}

// View implements View.
func (m *AddFoodModal) View() string {
	return m.form.view(Styles.Title.Render("New food"), "Tab: next field  Enter: add  Esc: close")
}
