package dashboard

import "foodadmin/internal/food"

// Op names a dashboard operation in results and log fields.
type Op string

const (
	OpInitialize      Op = "initialize"
	OpAdd             Op = "add"
	OpUpdate          Op = "update"
	OpDelete          Op = "delete"
	OpToggleAvailable Op = "toggle_available"
)

// Result is the outcome of a mutating operation. Food is the server's record
// for add and update; ID is the target id.
type Result struct {
	Op   Op
	ID   int
	Food food.Food
	Err  error
}

// OK reports whether the remote call succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}
