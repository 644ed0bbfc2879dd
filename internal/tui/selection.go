package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/localedemo/internal/catalog"
	"github.com/jask/localedemo/internal/flow"
)

// SelectionScreen shows the country choice and owns the one DetailScreen
// that every view request reuses.
type SelectionScreen struct {
	table     *catalog.Table
	keys      *KeyRegistry
	choice    *Choice
	detail    *DetailScreen
	search    textinput.Model
	searching bool
}

func NewSelectionScreen(table *catalog.Table, keys *KeyRegistry, index int) *SelectionScreen {
	in := textinput.New()
	in.Prompt = table.Labels.SearchPrompt + " "
	in.CharLimit = 32
	in.Cursor.SetMode(cursor.CursorStatic)
	return &SelectionScreen{
		table:  table,
		keys:   keys,
		choice: NewChoice(table.Labels.ChoiceLabel, table.Labels.Choices, index),
		detail: NewDetailScreen(table, keys),
		search: in,
	}
}

func (s *SelectionScreen) Title() string { return s.table.Labels.AppTitle }

func (s *SelectionScreen) Scope() string {
	if s.searching {
		return scopeSearch
	}
	return scopeSelection
}

// OnSavePrompt reports true: nothing here is editable, so leaving never asks.
func (s *SelectionScreen) OnSavePrompt() bool { return true }

func (s *SelectionScreen) Detail() *DetailScreen { return s.detail }

func (s *SelectionScreen) Update(msg tea.Msg) Result {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.searching {
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return Result{Cmd: cmd}
		}
		return Result{}
	}
	if s.searching {
		return s.updateSearch(km)
	}
	switch s.keys.Action(km, scopeSelection) {
	case "choice-prev":
		return s.browse(-1)
	case "choice-next":
		return s.browse(1)
	case "commit":
		return Result{Events: []flow.Event{s.choice.Changed(true)}}
	case "view":
		return Result{Command: "view"}
	case "history":
		return Result{Command: "history"}
	case "open-menu":
		return Result{Command: "menu"}
	case "find":
		s.searching = true
		s.search.SetValue("")
		return Result{Cmd: s.search.Focus()}
	case "back":
		return Result{Events: []flow.Event{flow.BackRequested{}}}
	}
	return Result{}
}

func (s *SelectionScreen) browse(delta int) Result {
	if !s.choice.Move(delta) {
		return Result{}
	}
	return Result{Events: []flow.Event{s.choice.Changed(false)}}
}

func (s *SelectionScreen) updateSearch(km tea.KeyMsg) Result {
	switch s.keys.Action(km, scopeSearch) {
	case "close":
		s.stopSearch()
		return Result{}
	case "commit":
		s.stopSearch()
		return Result{Events: []flow.Event{s.choice.Changed(true)}}
	}
	before := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(km)
	if s.search.Value() == before {
		return Result{Cmd: cmd}
	}
	idx, ok := s.table.Match(s.search.Value())
	if !ok || !s.choice.Set(idx) {
		return Result{Cmd: cmd}
	}
	return Result{Cmd: cmd, Events: []flow.Event{s.choice.Changed(false)}}
}

func (s *SelectionScreen) stopSearch() {
	s.searching = false
	s.search.Blur()
	s.search.SetValue("")
}

func (s *SelectionScreen) View(width, height int) string {
	parts := []string{
		screenTitleStyle.Render(s.table.Labels.AppTitle),
		"",
		textStyle.Width(max(1, width)).Render(s.table.Labels.Instructions),
		separator(width),
		"",
		s.choice.View(),
	}
	if s.searching {
		parts = append(parts, "", s.search.View())
	}
	return fitHeight(lipgloss.JoinVertical(lipgloss.Left, parts...), height)
}
