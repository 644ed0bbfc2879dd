package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/localedemo/internal/flow"
)

type fakeScreen struct {
	hits   int
	modal  bool
	refuse bool
}

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return "screen:test" }
func (s *fakeScreen) View(int, int) string { return "screen" }
func (s *fakeScreen) Modal() bool          { return s.modal }
func (s *fakeScreen) OnSavePrompt() bool   { return !s.refuse }
func (s *fakeScreen) Update(msg tea.Msg) Result {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return Result{Pop: true}
		}
	}
	return Result{}
}

func TestTopScreenGetsKeysFirst(t *testing.T) {
	m := newModel(t, Options{})
	screen := &fakeScreen{modal: true}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if updated.State().Selected != 0 {
		t.Fatalf("selection should not move while a screen is open")
	}
	if updated.screens.Len() != 2 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	m := newModel(t, Options{})
	m.PushScreen(&fakeScreen{modal: true})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.screens.Len() != 1 {
		t.Fatalf("expected screen to pop on esc")
	}
	if updated.State().Screen != flow.ListVisible {
		t.Fatalf("popping a modal must not change navigation state")
	}
}

func TestScreenCanRefuseDismiss(t *testing.T) {
	m := newModel(t, Options{})
	m.PushScreen(&fakeScreen{refuse: true})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).screens.Len() != 2 {
		t.Fatalf("screen asking for a save prompt should stay")
	}
}

func TestScreenStack(t *testing.T) {
	var s ScreenStack
	if s.Top() != nil || s.Pop() != nil || s.Base() != nil {
		t.Fatalf("empty stack should return nil")
	}
	base := &fakeScreen{}
	popup := &fakeScreen{modal: true}
	s.Push(base)
	s.Push(nil)
	s.Push(popup)
	if s.Len() != 2 {
		t.Fatalf("nil screens are ignored, got len %d", s.Len())
	}
	if s.Top() != popup || s.Base() != base {
		t.Fatalf("top should be the popup and base the screen below it")
	}
	if s.Pop() != popup || s.Top() != base {
		t.Fatalf("pop should return the most recent screen")
	}
}
