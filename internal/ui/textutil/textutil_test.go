package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "Veggie", 10, "Veggie"},
		{"exact", "Veggie", 6, "Veggie"},
		{"cut", "Macarrão ao molho branco", 10, "Macarrão …"},
		{"zero", "Veggie", 0, ""},
		{"only ellipsis", "Veggie", 1, "…"},
		{"wide runes not split", "寿司寿司", 4, "寿…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Width(got), max(tt.max, 0))
		})
	}
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "a b c", SingleLine("  a\n b\t\tc "))
	assert.Equal(t, "", SingleLine("\n"))
}
