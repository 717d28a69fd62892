// Package textutil provides width-aware text helpers for list rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut. Wide runes are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}

	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + Ellipsis
}

// SingleLine collapses runs of whitespace, newlines included, to one space.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
