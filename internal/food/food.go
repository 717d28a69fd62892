// Package food defines the menu item record shared by the dashboard, the
// HTTP client and the development API server.
package food

import (
	"fmt"
	"strconv"
	"strings"
)

// Food is a single menu item as served by the /foods resource.
// ID is assigned by the server and never changes after creation.
type Food struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // decimal text, e.g. "19.90"
	Available   bool   `json:"available"`
	Image       string `json:"image"`
}

// Draft is a Food without an id, as submitted by the add dialog.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Available   bool   `json:"available"`
	Image       string `json:"image"`
}

// Patch carries the fields an edit changes. Nil fields are left alone by Merge.
type Patch struct {
	Name        *string
	Description *string
	Price       *string
	Available   *bool
	Image       *string
}

// Merge returns base with every non-nil field of p applied on top.
// The id always comes from base.
func Merge(base Food, p Patch) Food {
	out := base
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.Available != nil {
		out.Available = *p.Available
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	return out
}

// WithID turns a draft into a record with the given id.
func (d Draft) WithID(id int) Food {
	return Food{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Available:   d.Available,
		Image:       d.Image,
	}
}

// Draft drops the id.
func (f Food) Draft() Draft {
	return Draft{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Available:   f.Available,
		Image:       f.Image,
	}
}

// String is used in log fields.
func (f Food) String() string {
	return fmt.Sprintf("#%d %s", f.ID, f.Name)
}

// FormatPrice renders a price for display. Text that does not parse as a
// decimal is shown unchanged.
func FormatPrice(price string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return price
	}
	return fmt.Sprintf("$ %.2f", v)
}

// Ptr returns a pointer to v. Handy for building a Patch.
func Ptr[T any](v T) *T {
	return &v
}
