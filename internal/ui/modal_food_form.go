package ui

import (
	"strings"

	"foodadmin/internal/food"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form field order. Focus moves in this order with Tab.
const (
	fieldName = iota
	fieldPrice
	fieldDescription
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:        "Name",
	fieldPrice:       "Price",
	fieldDescription: "Description",
	fieldImage:       "Image URL",
}

var fieldPlaceholders = [fieldCount]string{
	fieldName:        "Ao molho",
	fieldPrice:       "19.90",
	fieldDescription: "Macarrão ao molho branco, fughi e cheiro verde das montanhas",
	fieldImage:       "https://…",
}

// foodForm is the multi-field text form shared by the add and edit dialogs.
type foodForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newFoodForm(initial food.Draft) foodForm {
	var f foodForm
	values := [fieldCount]string{
		fieldName:        initial.Name,
		fieldPrice:       initial.Price,
		fieldDescription: initial.Description,
		fieldImage:       initial.Image,
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Width = 48
		ti.Prompt = "› "
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()
	return f
}

// value returns the trimmed text of field i.
func (f *foodForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// draft collects the form into a draft. Availability is left to the caller.
func (f *foodForm) draft() food.Draft {
	return food.Draft{
		Name:        f.value(fieldName),
		Price:       f.value(fieldPrice),
		Description: f.value(fieldDescription),
		Image:       f.value(fieldImage),
	}
}

// patch collects every field the form shows.
func (f *foodForm) patch() food.Patch {
	return food.Patch{
		Name:        food.Ptr(f.value(fieldName)),
		Price:       food.Ptr(f.value(fieldPrice)),
		Description: food.Ptr(f.value(fieldDescription)),
		Image:       food.Ptr(f.value(fieldImage)),
	}
}

// Focused returns the index of the focused field.
func (f *foodForm) Focused() int {
	return f.focus
}

func (f *foodForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// update handles focus movement and forwards the rest to the focused input.
// Enter, Esc and submission are handled by the owning dialog.
func (f *foodForm) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			return f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f.setFocus(f.focus - 1)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *foodForm) view(title, help string) string {
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i := range f.inputs {
		label := fieldLabels[i]
		if i == f.focus {
			label = Styles.Selected.Render(label)
		}
		b.WriteString(Styles.Label.Render(label) + f.inputs[i].View() + "\n")
	}
	b.WriteString("\n" + Styles.Hint.Render(help))
	return Styles.Box.Render(b.String())
}
