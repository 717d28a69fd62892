// Package dashboard owns the food list page state: the collection fetched
// from the API, the record under edit, and the two dialog flags.
//
// Every mutating operation comes in two halves so a UI can run the network
// call off its event loop and apply the reconcile on it:
//
//	body := d.AddRequest(draft)        // pure, no state change
//	created, err := svc.Create(ctx, body)
//	res := d.ApplyAdded(created, err)  // reconcile
//
// AddFood, UpdateFood, DeleteFood and ToggleAvailable do both halves in one
// blocking call. The state lock is never held across a network call, so
// overlapping operations reconcile in the order their responses arrive.
package dashboard

import (
	"context"
	"errors"
	"slices"
	"sync"

	"foodadmin/internal/api"
	"foodadmin/internal/food"

	log "github.com/sirupsen/logrus"
)

// ErrUnknownFood is returned when an operation names an id that is not in
// the local collection.
var ErrUnknownFood = errors.New("food not in list")

// Options seed the initial state. The zero value is an empty, closed page.
type Options struct {
	Foods          []food.Food
	EditingFood    food.Food
	AddDialogOpen  bool
	EditDialogOpen bool
	DeletePolicy   DeletePolicy
	Logger         log.FieldLogger
}

// Dashboard is the state orchestrator for one page instance.
type Dashboard struct {
	svc    api.Service
	log    log.FieldLogger
	policy DeletePolicy

	mu          sync.Mutex
	foods       []food.Food
	editingFood food.Food
	addOpen     bool
	editOpen    bool
	initStarted bool
}

// New creates a dashboard talking to svc.
func New(svc api.Service, opts Options) *Dashboard {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Dashboard{
		svc:         svc,
		log:         logger.WithField("component", "dashboard"),
		policy:      opts.DeletePolicy,
		foods:       slices.Clone(opts.Foods),
		editingFood: opts.EditingFood,
		addOpen:     opts.AddDialogOpen,
		editOpen:    opts.EditDialogOpen,
	}
}

// Service returns the remote service the dashboard was built with.
func (d *Dashboard) Service() api.Service {
	return d.svc
}

// DeletePolicy returns the configured delete reconciliation policy.
func (d *Dashboard) DeletePolicy() DeletePolicy {
	return d.policy
}

// Foods returns a copy of the current collection in display order.
func (d *Dashboard) Foods() []food.Food {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.foods)
}

// Find returns the record with the given id.
func (d *Dashboard) Find(id int) (food.Food, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexOf(id)
	if i < 0 {
		return food.Food{}, false
	}
	return d.foods[i], true
}

// EditingFood returns the record targeted by the edit dialog.
// Only meaningful while EditDialogOpen is true.
func (d *Dashboard) EditingFood() food.Food {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editingFood
}

// AddDialogOpen reports whether the add dialog is visible.
func (d *Dashboard) AddDialogOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addOpen
}

// EditDialogOpen reports whether the edit dialog is visible.
func (d *Dashboard) EditDialogOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editOpen
}

// BeginInitialize reports whether the collection fetch should run. Only the
// first call per instance returns true.
func (d *Dashboard) BeginInitialize() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.initStarted {
		return false
	}
	d.initStarted = true
	return true
}

// ApplyLoaded replaces the collection wholesale with foods. On err the
// current collection is kept.
func (d *Dashboard) ApplyLoaded(foods []food.Food, err error) error {
	if err != nil {
		d.log.WithError(err).WithField("op", OpInitialize).Error("fetch foods failed")
		return err
	}
	d.mu.Lock()
	d.foods = slices.Clone(foods)
	d.mu.Unlock()
	d.log.WithField("count", len(foods)).Debug("foods loaded")
	return nil
}

// Initialize fetches the collection once. Later calls are no-ops.
func (d *Dashboard) Initialize(ctx context.Context) error {
	if !d.BeginInitialize() {
		return nil
	}
	foods, err := d.svc.List(ctx)
	return d.ApplyLoaded(foods, err)
}

// AddRequest returns the body sent for a new record: the draft with
// Available forced to true.
func (d *Dashboard) AddRequest(draft food.Draft) food.Draft {
	draft.Available = true
	return draft
}

// ApplyAdded appends the server's record on success.
func (d *Dashboard) ApplyAdded(created food.Food, err error) Result {
	if err != nil {
		d.log.WithError(err).WithField("op", OpAdd).Error("add food failed")
		return Result{Op: OpAdd, Err: err}
	}
	d.mu.Lock()
	if i := d.indexOf(created.ID); i >= 0 {
		// ids are unique; a server echoing a known id replaces it
		d.foods[i] = created
	} else {
		d.foods = append(d.foods, created)
	}
	d.mu.Unlock()
	return Result{Op: OpAdd, ID: created.ID, Food: created}
}

// AddFood creates a record and appends it to the collection.
func (d *Dashboard) AddFood(ctx context.Context, draft food.Draft) Result {
	created, err := d.svc.Create(ctx, d.AddRequest(draft))
	return d.ApplyAdded(created, err)
}

// UpdateRequest merges patch over the record under edit. It returns the id
// to update and the full body to send.
func (d *Dashboard) UpdateRequest(patch food.Patch) (int, food.Food) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editingFood.ID, food.Merge(d.editingFood, patch)
}

// ApplyUpdated replaces the element whose id matches the server's record.
func (d *Dashboard) ApplyUpdated(id int, updated food.Food, err error) Result {
	return d.applyReplace(OpUpdate, id, updated, err)
}

// UpdateFood sends the record under edit with patch applied and reconciles
// the response into the collection.
func (d *Dashboard) UpdateFood(ctx context.Context, patch food.Patch) Result {
	id, body := d.UpdateRequest(patch)
	updated, err := d.svc.Update(ctx, id, body)
	return d.ApplyUpdated(id, updated, err)
}

// ToggleRequest returns the record with Available flipped.
func (d *Dashboard) ToggleRequest(id int) (food.Food, error) {
	f, ok := d.Find(id)
	if !ok {
		return food.Food{}, ErrUnknownFood
	}
	f.Available = !f.Available
	return f, nil
}

// ApplyToggled reconciles an availability change like ApplyUpdated.
func (d *Dashboard) ApplyToggled(id int, updated food.Food, err error) Result {
	return d.applyReplace(OpToggleAvailable, id, updated, err)
}

// ToggleAvailable flips the availability of a listed record. The record
// under edit is not touched.
func (d *Dashboard) ToggleAvailable(ctx context.Context, id int) Result {
	body, err := d.ToggleRequest(id)
	if err != nil {
		return d.ApplyToggled(id, food.Food{}, err)
	}
	updated, err := d.svc.Update(ctx, id, body)
	return d.ApplyToggled(id, updated, err)
}

func (d *Dashboard) applyReplace(op Op, id int, updated food.Food, err error) Result {
	if err != nil {
		d.log.WithError(err).WithFields(log.Fields{"op": op, "id": id}).Error("update food failed")
		return Result{Op: op, ID: id, Err: err}
	}
	d.mu.Lock()
	for i := range d.foods {
		if d.foods[i].ID == updated.ID {
			d.foods[i] = updated
		}
	}
	d.mu.Unlock()
	return Result{Op: op, ID: updated.ID, Food: updated}
}

// OpenAddDialog shows the add dialog.
func (d *Dashboard) OpenAddDialog() {
	d.mu.Lock()
	d.addOpen = true
	d.mu.Unlock()
}

// CloseAddDialog hides the add dialog.
func (d *Dashboard) CloseAddDialog() {
	d.mu.Lock()
	d.addOpen = false
	d.mu.Unlock()
}

// ToggleAddDialog flips the add dialog and returns the new state.
func (d *Dashboard) ToggleAddDialog() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.addOpen = !d.addOpen
	return d.addOpen
}

// OpenEditDialog targets f for editing and shows the edit dialog.
func (d *Dashboard) OpenEditDialog(f food.Food) {
	d.mu.Lock()
	d.editingFood = f
	d.editOpen = true
	d.mu.Unlock()
}

// ToggleEditDialog flips the edit dialog and returns the new state.
// The record under edit is kept.
func (d *Dashboard) ToggleEditDialog() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editOpen = !d.editOpen
	return d.editOpen
}

// indexOf must be called with mu held.
func (d *Dashboard) indexOf(id int) int {
	return slices.IndexFunc(d.foods, func(f food.Food) bool { return f.ID == id })
}
