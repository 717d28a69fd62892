package ui

import (
	"fmt"

	"foodadmin/internal/food"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditFoodModal is the dialog for editing an existing food. The form is
// prefilled from the record under edit.
type EditFoodModal struct {
	Food food.Food
	form foodForm
}

// Ensure EditFoodModal implements View.
var _ View = (*EditFoodModal)(nil)

// NewEditFoodModal creates an edit dialog for f.
func NewEditFoodModal(f food.Food) *EditFoodModal {
	return &EditFoodModal{Food: f, form: newFoodForm(f.Draft())}
}

// Init implements View.
func (m *EditFoodModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *EditFoodModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{Dialog: dialogEdit} }
		case "enter":
			p := m.form.patch()
			return m, func() tea.Msg { return SubmitEditFoodMsg{Patch: p} }
		}
	}
	return m, m.form.update(msg)
}

// View implements View.
func (m *EditFoodModal) View() string {
	title := Styles.TitleWarning.Render(fmt.Sprintf("Edit food #%d", m.Food.ID))
	return m.form.view(title, "Tab: next field  Enter: save  Esc: close")
}
