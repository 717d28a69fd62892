package ui

import (
	"foodadmin/internal/dashboard"
	"foodadmin/internal/food"
)

// dialogKind identifies one of the two form dialogs.
type dialogKind int

const (
	dialogAdd dialogKind = iota
	dialogEdit
)

func (k dialogKind) String() string {
	if k == dialogEdit {
		return "edit"
	}
	return "add"
}

// ShowAddFoodMsg opens the add dialog (header action, "a" or SPC a).
type ShowAddFoodMsg struct{}

// EditSelectedMsg opens the edit dialog for the selected food ("e", Enter or SPC e).
type EditSelectedMsg struct{}

// DeleteSelectedMsg deletes the selected food ("d" or SPC d).
type DeleteSelectedMsg struct{}

// ToggleSelectedMsg flips availability of the selected food ("t" or SPC t).
type ToggleSelectedMsg struct{}

// DismissModalMsg is sent when a dialog is dismissed with Esc.
type DismissModalMsg struct {
	Dialog dialogKind
}

// SubmitAddFoodMsg is emitted by the add dialog on Enter.
type SubmitAddFoodMsg struct {
	Draft food.Draft
}

// SubmitEditFoodMsg is emitted by the edit dialog on Enter.
// The patch carries every field the form shows.
type SubmitEditFoodMsg struct {
	Patch food.Patch
}

// FoodsLoadedMsg is sent when the initial collection fetch completes.
type FoodsLoadedMsg struct {
	Foods []food.Food
	Err   error
}

// FoodAddedMsg is sent when a create request completes.
type FoodAddedMsg struct {
	Food food.Food
	Err  error
}

// FoodUpdatedMsg is sent when an update (edit or availability toggle) completes.
type FoodUpdatedMsg struct {
	Op   dashboard.Op // OpUpdate or OpToggleAvailable
	ID   int          // target id of the request
	Food food.Food
	Err  error
}

// FoodDeletedMsg is sent when a delete request completes.
type FoodDeletedMsg struct {
	Pending dashboard.PendingDelete
	Err     error
}
