package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopes(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	if got := r.Action(esc, scopeSelection); got != "back" {
		t.Fatalf("esc on selection = %q, want back", got)
	}
	if got := r.Action(esc, scopeSearch); got != "close" {
		t.Fatalf("esc while searching = %q, want close", got)
	}
	if !r.IsAction(tea.KeyMsg{Type: tea.KeyBackspace}, "back", scopeDetail) {
		t.Fatalf("backspace should go back from detail")
	}
	if r.IsAction(tea.KeyMsg{Type: tea.KeyBackspace}, "back", scopeSelection) {
		t.Fatalf("backspace should do nothing on the list")
	}
	if !r.IsAction(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "commit", scopeSelection) {
		t.Fatalf("space should commit the choice")
	}
	if got := r.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, scopeSelection); got != "" {
		t.Fatalf("unbound key = %q, want empty", got)
	}
}

func TestRegisterAddsBinding(t *testing.T) {
	r := NewKeyRegistry(nil)
	r.Register(KeyBinding{Keys: []string{"F1"}, Action: "open-menu"})
	if !r.IsAction(tea.KeyMsg{Type: tea.KeyF1}, "open-menu", "anything") {
		t.Fatalf("unscoped binding should match every scope")
	}
}

func TestFooterListsScopeBindings(t *testing.T) {
	m := newModel(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 30})
	footer := RenderFooter(m)
	for _, want := range []string{"view", "menu", "find", "quit"} {
		if !strings.Contains(footer, want) {
			t.Fatalf("footer missing %q: %s", want, footer)
		}
	}
	m = press(t, m, "v")
	footer = RenderFooter(m)
	if !strings.Contains(footer, "back") || strings.Contains(footer, "menu") {
		t.Fatalf("detail footer should only offer back: %s", footer)
	}
}
