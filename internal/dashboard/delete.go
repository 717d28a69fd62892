package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"foodadmin/internal/food"

	log "github.com/sirupsen/logrus"
)

// DeletePolicy decides when a deleted record leaves the local collection.
type DeletePolicy int

const (
	// RemoveAlways removes the record once the delete call returns,
	// whether it succeeded or not.
	RemoveAlways DeletePolicy = iota
	// RemoveOnSuccess removes the record only after the server confirms.
	RemoveOnSuccess
	// RemoveThenRestore removes the record before the call and puts it
	// back at its old position if the call fails.
	RemoveThenRestore
)

func (p DeletePolicy) String() string {
	switch p {
	case RemoveAlways:
		return "always"
	case RemoveOnSuccess:
		return "on-success"
	case RemoveThenRestore:
		return "restore"
	default:
		return fmt.Sprintf("DeletePolicy(%d)", int(p))
	}
}

// ParseDeletePolicy parses the String form of a policy.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "always":
		return RemoveAlways, nil
	case "on-success":
		return RemoveOnSuccess, nil
	case "restore":
		return RemoveThenRestore, nil
	}
	return 0, fmt.Errorf("unknown delete policy %q (want always, on-success or restore)", s)
}

// PendingDelete is the state captured when a delete starts. Pass it back to
// ApplyDelete with the call's outcome.
type PendingDelete struct {
	ID     int
	Policy DeletePolicy

	removed []removedFood
}

type removedFood struct {
	index int
	food  food.Food
}

// BeginDelete is the pre-call transition. Under RemoveThenRestore it removes
// the record immediately; otherwise the collection is unchanged.
func (d *Dashboard) BeginDelete(id int) PendingDelete {
	p := PendingDelete{ID: id, Policy: d.policy}
	if d.policy != RemoveThenRestore {
		return p
	}
	d.mu.Lock()
	p.removed = d.removeLocked(id)
	d.mu.Unlock()
	return p
}

// ApplyDelete is the post-response transition. Removing an id that is not
// present is a no-op.
func (d *Dashboard) ApplyDelete(p PendingDelete, err error) Result {
	res := Result{Op: OpDelete, ID: p.ID, Err: err}
	if err != nil {
		d.log.WithError(err).WithFields(log.Fields{
			"op":     OpDelete,
			"id":     p.ID,
			"policy": p.Policy,
		}).Error("delete food failed")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	switch p.Policy {
	case RemoveOnSuccess:
		if err == nil {
			d.removeLocked(p.ID)
		}
	case RemoveThenRestore:
		if err != nil {
			d.restoreLocked(p.removed)
		}
	default:
		d.removeLocked(p.ID)
	}
	return res
}

// DeleteFood deletes a record remotely and reconciles per the policy.
func (d *Dashboard) DeleteFood(ctx context.Context, id int) Result {
	p := d.BeginDelete(id)
	err := d.svc.Delete(ctx, id)
	return d.ApplyDelete(p, err)
}

// removeLocked drops every record with id and returns what it dropped.
func (d *Dashboard) removeLocked(id int) []removedFood {
	var removed []removedFood
	kept := d.foods[:0:0]
	for i, f := range d.foods {
		if f.ID == id {
			removed = append(removed, removedFood{index: i, food: f})
			continue
		}
		kept = append(kept, f)
	}
	if len(removed) > 0 {
		d.foods = kept
	}
	return removed
}

// restoreLocked puts removed records back near their old positions. A record
// whose id reappeared in the meantime is not duplicated.
func (d *Dashboard) restoreLocked(removed []removedFood) {
	for _, r := range removed {
		if d.indexOf(r.food.ID) >= 0 {
			continue
		}
		i := min(r.index, len(d.foods))
		d.foods = slices.Insert(d.foods, i, r.food)
	}
}
