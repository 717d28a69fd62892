package ui

import (
	"context"

	"foodadmin/internal/dashboard"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// AppModel is the root model. It owns the dashboard state and derives the
// dialogs from its flags.
type AppModel struct {
	State      *dashboard.Dashboard
	Dashboard  *DashboardView
	AddModal   *AddFoodModal
	EditModal  *EditFoodModal
	KeyHandler *KeyHandler

	// CloseOnSubmit makes a dialog toggle itself closed when submitted.
	CloseOnSubmit bool

	Status        string
	StatusIsError bool

	ctx context.Context
	log log.FieldLogger
}

// Options configures NewAppModel.
type Options struct {
	// Context bounds every request issued from the UI. Defaults to context.Background.
	Context       context.Context
	CloseOnSubmit bool
	Logger        log.FieldLogger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model over state.
func NewAppModel(state *dashboard.Dashboard, opts Options) *AppModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	dv := NewDashboardView()
	dv.SetFoods(state.Foods())
	return &AppModel{
		State:         state,
		Dashboard:     dv,
		KeyHandler:    NewKeyHandler(NewFoodKeybinds()),
		CloseOnSubmit: opts.CloseOnSubmit,
		ctx:           ctx,
		log:           logger.WithField("component", "ui"),
	}
}

// AsTeaModel returns a tea.Model for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// NewFoodKeybinds returns the registry for the food list.
func NewFoodKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	show := func() tea.Msg { return ShowAddFoodMsg{} }
	edit := func() tea.Msg { return EditSelectedMsg{} }
	del := func() tea.Msg { return DeleteSelectedMsg{} }
	toggle := func() tea.Msg { return ToggleSelectedMsg{} }

	reg.BindWithDesc("SPC a", show, "Add food")
	reg.BindWithDesc("SPC e", edit, "Edit food")
	reg.BindWithDesc("SPC d", del, "Delete food")
	reg.BindWithDesc("SPC t", toggle, "Toggle availability")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	reg.Bind("a", show)
	reg.Bind("e", edit)
	reg.Bind("enter", edit)
	reg.Bind("d", del)
	reg.Bind("t", toggle)
	reg.Bind("q", tea.Quit)
	return reg
}

// Init implements tea.Model. The collection is fetched once per state.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{a.syncModals()}
	if a.State.BeginInitialize() {
		cmds = append(cmds,
			a.Dashboard.SetLoading(true),
			loadFoodsCmd(a.ctx, a.State.Service()),
		)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FoodsLoadedMsg:
		return a.handleFoodsLoaded(msg)
	case FoodAddedMsg:
		return a.handleFoodAdded(msg)
	case FoodUpdatedMsg:
		return a.handleFoodUpdated(msg)
	case FoodDeletedMsg:
		return a.handleFoodDeleted(msg)
	case ShowAddFoodMsg:
		return a.handleShowAddFood()
	case EditSelectedMsg:
		return a.handleEditSelected()
	case DeleteSelectedMsg:
		return a.handleDeleteSelected()
	case ToggleSelectedMsg:
		return a.handleToggleSelected()
	case SubmitAddFoodMsg:
		return a.handleSubmitAdd(msg)
	case SubmitEditFoodMsg:
		return a.handleSubmitEdit(msg)
	case DismissModalMsg:
		return a.handleDismissModal(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// An open dialog owns the keyboard
		if m := a.activeModal(); m != nil {
			_, cmd := m.Update(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	var cmds []tea.Cmd
	if _, ok := msg.(tea.KeyMsg); !ok {
		// Cursor blink and other non-key messages reach the dialogs too
		if m := a.activeModal(); m != nil {
			_, cmd := m.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	_, cmd := a.Dashboard.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Dashboard.View()
	if m := a.activeModal(); m != nil {
		base += "\n" + m.View()
	}
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		base += "\n" + style.Render(a.Status)
	}
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		base += "\n" + help
	}
	return base
}

// activeModal returns the dialog receiving keys. The edit dialog sits on
// top when both are open.
func (a *AppModel) activeModal() View {
	if a.EditModal != nil {
		return a.EditModal
	}
	if a.AddModal != nil {
		return a.AddModal
	}
	return nil
}

// syncModals creates or drops dialog views to match the dashboard flags.
func (a *AppModel) syncModals() tea.Cmd {
	var cmds []tea.Cmd
	if a.State.AddDialogOpen() {
		if a.AddModal == nil {
			a.AddModal = NewAddFoodModal()
			cmds = append(cmds, a.AddModal.Init())
		}
	} else {
		a.AddModal = nil
	}
	if a.State.EditDialogOpen() {
		editing := a.State.EditingFood()
		if a.EditModal == nil || a.EditModal.Food.ID != editing.ID {
			a.EditModal = NewEditFoodModal(editing)
			cmds = append(cmds, a.EditModal.Init())
		}
	} else {
		a.EditModal = nil
	}
	return tea.Batch(cmds...)
}

// refreshList re-renders the list from the dashboard state.
func (a *AppModel) refreshList() {
	a.Dashboard.SetFoods(a.State.Foods())
}

func (a *AppModel) setStatus(s string, isErr bool) {
	a.Status = s
	a.StatusIsError = isErr
}
