// Package ui is the Bubble Tea front end of the food admin dashboard.
//
// Core pieces:
//   - View: a screen or region with its own model, update and view (Elm-style)
//   - AppModel: root model; owns the dashboard state and routes messages
//   - DashboardView: header, food list and status line
//   - AddFoodModal / EditFoodModal: form dialogs driven by the dashboard flags
//   - KeybindRegistry / KeyHandler: leader-key (SPC) bindings with a help bar
//
// Network calls never run on the update loop. Commands call the remote
// service and report back with FoodsLoadedMsg, FoodAddedMsg, FoodUpdatedMsg
// or FoodDeletedMsg, which are reconciled into the dashboard in arrival order.
package ui
