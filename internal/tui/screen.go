package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/localedemo/internal/flow"
)

// Result is what a screen asks the model to do after handling a message.
type Result struct {
	Cmd     tea.Cmd
	Events  []flow.Event
	Command string
	Pop     bool
}

type Screen interface {
	Update(msg tea.Msg) Result
	View(width, height int) string
	Scope() string
	Title() string
}

// SavePrompter is implemented by screens that decide whether dismissing
// them needs a confirmation. Returning true dismisses silently.
type SavePrompter interface {
	OnSavePrompt() bool
}

// modal screens are drawn as a popup over the screen below them.
type modal interface {
	Modal() bool
}

func isModal(s Screen) bool {
	m, ok := s.(modal)
	return ok && m.Modal()
}

func dismissSilently(s Screen) bool {
	p, ok := s.(SavePrompter)
	return !ok || p.OnSavePrompt()
}

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

// Base returns the topmost screen that is not a modal.
func (s ScreenStack) Base() Screen {
	for i := len(s.items) - 1; i >= 0; i-- {
		if !isModal(s.items[i]) {
			return s.items[i]
		}
	}
	return nil
}
