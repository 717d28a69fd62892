package ui

import (
	"context"

	"foodadmin/internal/api"
	"foodadmin/internal/dashboard"
	"foodadmin/internal/food"

	tea "github.com/charmbracelet/bubbletea"
)

// loadFoodsCmd fetches the full collection.
func loadFoodsCmd(ctx context.Context, svc api.Service) tea.Cmd {
	return func() tea.Msg {
		foods, err := svc.List(ctx)
		return FoodsLoadedMsg{Foods: foods, Err: err}
	}
}

// addFoodCmd creates a record from body.
func addFoodCmd(ctx context.Context, svc api.Service, body food.Draft) tea.Cmd {
	return func() tea.Msg {
		created, err := svc.Create(ctx, body)
		return FoodAddedMsg{Food: created, Err: err}
	}
}

// updateFoodCmd sends body as a full update of id. op tells the handler
// whether this was an edit or an availability toggle.
func updateFoodCmd(ctx context.Context, svc api.Service, op dashboard.Op, id int, body food.Food) tea.Cmd {
	return func() tea.Msg {
		updated, err := svc.Update(ctx, id, body)
		return FoodUpdatedMsg{Op: op, ID: id, Food: updated, Err: err}
	}
}

// deleteFoodCmd deletes the record held by pending.
func deleteFoodCmd(ctx context.Context, svc api.Service, pending dashboard.PendingDelete) tea.Cmd {
	return func() tea.Msg {
		err := svc.Delete(ctx, pending.ID)
		return FoodDeletedMsg{Pending: pending, Err: err}
	}
}
