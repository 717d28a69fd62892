package ui

import (
	"fmt"

	"foodadmin/internal/dashboard"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// handleFoodsLoaded applies the collection fetch.
func (a *appModelAdapter) handleFoodsLoaded(msg FoodsLoadedMsg) (tea.Model, tea.Cmd) {
	a.Dashboard.SetLoading(false)
	if err := a.State.ApplyLoaded(msg.Foods, msg.Err); err != nil {
		a.setStatus("Could not load foods: "+err.Error(), true)
		return a, nil
	}
	a.refreshList()
	return a, nil
}

// handleShowAddFood opens the add dialog.
func (a *appModelAdapter) handleShowAddFood() (tea.Model, tea.Cmd) {
	a.State.OpenAddDialog()
	return a, a.syncModals()
}

// handleEditSelected targets the selected record and opens the edit dialog.
func (a *appModelAdapter) handleEditSelected() (tea.Model, tea.Cmd) {
	f, ok := a.Dashboard.Selected()
	if !ok {
		return a, nil
	}
	a.State.OpenEditDialog(f)
	return a, a.syncModals()
}

// handleDismissModal toggles the dismissed dialog.
func (a *appModelAdapter) handleDismissModal(msg DismissModalMsg) (tea.Model, tea.Cmd) {
	var open bool
	switch msg.Dialog {
	case dialogAdd:
		open = a.State.ToggleAddDialog()
	case dialogEdit:
		open = a.State.ToggleEditDialog()
	}
	a.log.WithFields(log.Fields{"dialog": msg.Dialog, "open": open}).Debug("dialog toggled")
	return a, a.syncModals()
}

// handleSubmitAdd sends the create request. The dialog toggles itself
// closed when CloseOnSubmit is set, regardless of the outcome.
func (a *appModelAdapter) handleSubmitAdd(msg SubmitAddFoodMsg) (tea.Model, tea.Cmd) {
	body := a.State.AddRequest(msg.Draft)
	a.log.WithField("name", body.Name).Debug("submitting new food")
	if a.CloseOnSubmit {
		a.State.ToggleAddDialog()
	}
	a.setStatus("Adding "+body.Name+"…", false)
	return a, tea.Batch(addFoodCmd(a.ctx, a.State.Service(), body), a.syncModals())
}

// handleSubmitEdit sends the merged record under edit.
func (a *appModelAdapter) handleSubmitEdit(msg SubmitEditFoodMsg) (tea.Model, tea.Cmd) {
	id, body := a.State.UpdateRequest(msg.Patch)
	a.log.WithField("id", id).Debug("submitting food update")
	if a.CloseOnSubmit {
		a.State.ToggleEditDialog()
	}
	a.setStatus(fmt.Sprintf("Saving #%d…", id), false)
	return a, tea.Batch(updateFoodCmd(a.ctx, a.State.Service(), dashboard.OpUpdate, id, body), a.syncModals())
}

// handleDeleteSelected starts deleting the selected record.
func (a *appModelAdapter) handleDeleteSelected() (tea.Model, tea.Cmd) {
	f, ok := a.Dashboard.Selected()
	if !ok {
		return a, nil
	}
	pending := a.State.BeginDelete(f.ID)
	a.refreshList()
	a.setStatus("Deleting "+f.String()+"…", false)
	return a, deleteFoodCmd(a.ctx, a.State.Service(), pending)
}

// handleToggleSelected flips availability of the selected record.
func (a *appModelAdapter) handleToggleSelected() (tea.Model, tea.Cmd) {
	f, ok := a.Dashboard.Selected()
	if !ok {
		return a, nil
	}
	body, err := a.State.ToggleRequest(f.ID)
	if err != nil {
		a.setResult(a.State.ApplyToggled(f.ID, body, err))
		return a, nil
	}
	return a, updateFoodCmd(a.ctx, a.State.Service(), dashboard.OpToggleAvailable, f.ID, body)
}

// handleFoodAdded reconciles a create response.
func (a *appModelAdapter) handleFoodAdded(msg FoodAddedMsg) (tea.Model, tea.Cmd) {
	a.setResult(a.State.ApplyAdded(msg.Food, msg.Err))
	a.refreshList()
	return a, nil
}

// handleFoodUpdated reconciles an edit or availability response.
func (a *appModelAdapter) handleFoodUpdated(msg FoodUpdatedMsg) (tea.Model, tea.Cmd) {
	var res dashboard.Result
	if msg.Op == dashboard.OpToggleAvailable {
		res = a.State.ApplyToggled(msg.ID, msg.Food, msg.Err)
	} else {
		res = a.State.ApplyUpdated(msg.ID, msg.Food, msg.Err)
	}
	a.setResult(res)
	a.refreshList()
	return a, nil
}

// handleFoodDeleted reconciles a delete response.
func (a *appModelAdapter) handleFoodDeleted(msg FoodDeletedMsg) (tea.Model, tea.Cmd) {
	a.setResult(a.State.ApplyDelete(msg.Pending, msg.Err))
	a.refreshList()
	return a, nil
}

// setResult writes a one-line outcome to the status line.
func (a *AppModel) setResult(res dashboard.Result) {
	if !res.OK() {
		if res.ID == 0 {
			a.setStatus(fmt.Sprintf("%s failed: %v", res.Op, res.Err), true)
		} else {
			a.setStatus(fmt.Sprintf("%s #%d failed: %v", res.Op, res.ID, res.Err), true)
		}
		return
	}
	switch res.Op {
	case dashboard.OpAdd:
		a.setStatus("Added "+res.Food.String(), false)
	case dashboard.OpUpdate:
		a.setStatus("Saved "+res.Food.String(), false)
	case dashboard.OpToggleAvailable:
		state := "unavailable"
		if res.Food.Available {
			state = "available"
		}
		a.setStatus(res.Food.String()+" is now "+state, false)
	case dashboard.OpDelete:
		a.setStatus(fmt.Sprintf("Deleted #%d", res.ID), false)
	}
}
