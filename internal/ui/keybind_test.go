package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " "
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}
	if h.CurrentSeq() != "SPC" {
		t.Errorf("CurrentSeq = %q, want SPC", h.CurrentSeq())
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected a command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting || len(h.Buffer) != 0 {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
	consumed, _ = h.Handle(keyMsg("esc"))
	if consumed {
		t.Error("esc outside leader mode should not be consumed")
	}
}

func TestLeaderHints_FoodKeybinds(t *testing.T) {
	hints := NewFoodKeybinds().LeaderHints("")
	want := map[string]string{
		"a": "Add food",
		"e": "Edit food",
		"d": "Delete food",
		"t": "Toggle availability",
		"q": "Quit",
	}
	if len(hints) != len(want) {
		t.Fatalf("hints = %v, want %v", hints, want)
	}
	for k, v := range want {
		if hints[k] != v {
			t.Errorf("hint %q = %q, want %q", k, hints[k], v)
		}
	}
}

func TestLeaderHints_Submenu(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC f a", tea.Quit, "Add")
	reg.BindWithDesc("SPC f d", tea.Quit, "Delete")

	if got := reg.LeaderHints("")["f"]; got != "f…" {
		t.Errorf("first level hint = %q, want f…", got)
	}
	next := reg.LeaderHints("SPC f")
	if next["a"] != "Add" || next["d"] != "Delete" {
		t.Errorf("second level hints = %v", next)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(NewFoodKeybinds())
	if got := RenderKeybindHelp(h); got != "" {
		t.Errorf("help outside leader mode = %q, want empty", got)
	}
	if got := RenderKeybindHelp(nil); got != "" {
		t.Errorf("help for nil handler = %q, want empty", got)
	}

	h.Handle(keyMsg(" "))
	got := RenderKeybindHelp(h)
	for _, want := range []string{"SPC", "Add food", "Delete food", "Toggle availability", "cancel"} {
		if !strings.Contains(got, want) {
			t.Errorf("help missing %q:\n%s", want, got)
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
