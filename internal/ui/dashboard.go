package ui

import (
	"fmt"
	"strings"

	"foodadmin/internal/food"
	"foodadmin/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// foodItem implements list.Item for food.Food.
type foodItem struct {
	rec   food.Food
	width int // columns available for the description; 0 means unlimited
}

func (f foodItem) FilterValue() string { return f.rec.Name }

func (f foodItem) Title() string {
	return f.rec.Name + "  " + Styles.Price.Render(food.FormatPrice(f.rec.Price))
}

func (f foodItem) Description() string {
	state := Styles.Available.Render("available")
	if !f.rec.Available {
		state = Styles.Sold.Render("unavailable")
	}
	desc := textutil.SingleLine(f.rec.Description)
	if desc == "" {
		return state
	}
	if f.width > 0 {
		// state label plus separator
		desc = textutil.Truncate(desc, f.width-textutil.Width("unavailable  ")-2)
	}
	return state + "  " + desc
}

// DashboardView renders the header, the food list and the status line.
type DashboardView struct {
	list    list.Model
	Foods   []food.Food
	spinner spinner.Model
	loading bool // true while the collection fetch is in flight
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates an empty dashboard view. Foods arrive through SetFoods.
func NewDashboardView() *DashboardView {
	l := list.New(nil, NewFoodListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &DashboardView{list: l, spinner: s}
}

// SetFoods replaces the rendered records, keeping the cursor in range.
func (d *DashboardView) SetFoods(foods []food.Food) {
	idx := d.list.Index()
	d.Foods = foods
	d.setItems()
	if idx >= len(d.Foods) {
		idx = len(d.Foods) - 1
	}
	if idx >= 0 {
		d.list.Select(idx)
	}
}

func (d *DashboardView) setItems() {
	items := make([]list.Item, len(d.Foods))
	for i, f := range d.Foods {
		items[i] = foodItem{rec: f, width: d.list.Width()}
	}
	d.list.SetItems(items)
}

// Selected returns the record under the cursor.
func (d *DashboardView) Selected() (food.Food, bool) {
	item, ok := d.list.SelectedItem().(foodItem)
	if !ok {
		return food.Food{}, false
	}
	return item.rec, true
}

// Loading reports whether the spinner is shown.
func (d *DashboardView) Loading() bool {
	return d.loading
}

// SetLoading sets the loading state and returns a command to start the spinner.
func (d *DashboardView) SetLoading(loading bool) tea.Cmd {
	d.loading = loading
	if loading {
		return d.spinner.Tick
	}
	return nil
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.list.SetWidth(msg.Width)
		d.list.SetHeight(msg.Height - 5) // header, hint, status
		d.setItems()
		return d, nil
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	}

	// list.Model handles j/k/g/G and arrow navigation natively.
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DashboardView) View() string {
	// Default dimensions for tests
	if d.list.Width() == 0 {
		d.list.SetWidth(80)
	}
	if d.list.Height() == 0 {
		d.list.SetHeight(20)
	}

	var b strings.Builder
	b.WriteString(d.header() + "\n\n")
	switch {
	case len(d.Foods) == 0 && d.loading:
		b.WriteString(Styles.Empty.Render("Loading foods…"))
	case len(d.Foods) == 0:
		b.WriteString(Styles.Empty.Render("No foods yet. Press a to add one."))
	default:
		b.WriteString(d.list.View())
	}
	return b.String()
}

// header renders the title bar: count, spinner and the add hint.
func (d *DashboardView) header() string {
	title := Styles.Title.Render(fmt.Sprintf("Foods (%d)", len(d.Foods)))
	if d.loading {
		title += " " + d.spinner.View()
	}
	hint := Styles.Hint.Render("a: add  e: edit  d: delete  t: toggle  [SPC]: commands  q: quit")
	return title + "\n" + hint
}
