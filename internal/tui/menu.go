package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	CommandResult
}

func (i menuItem) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i menuItem) Description() string { return i.Desc }
func (i menuItem) FilterValue() string { return i.Name + " " + i.Desc + " " + i.CommandID }

// MenuScreen lists the commands available on the screen it was opened from.
type MenuScreen struct {
	title  string
	keys   *KeyRegistry
	search func(query string) []CommandResult
	input  textinput.Model
	list   list.Model
}

func NewMenuScreen(title string, keys *KeyRegistry, search func(query string) []CommandResult) *MenuScreen {
	inp := textinput.New()
	inp.Prompt = "> "
	inp.Cursor.SetMode(cursor.CursorStatic)
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 40, 10)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(false)
	lst.DisableQuitKeybindings()
	s := &MenuScreen{title: title, keys: keys, search: search, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *MenuScreen) Title() string { return s.title }
func (s *MenuScreen) Scope() string { return scopeMenu }
func (s *MenuScreen) Modal() bool   { return true }

// Selected returns the highlighted command id.
func (s *MenuScreen) Selected() (CommandResult, bool) {
	it, ok := s.list.SelectedItem().(menuItem)
	return it.CommandResult, ok
}

func (s *MenuScreen) Update(msg tea.Msg) Result {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return Result{Cmd: cmd}
	}
	switch s.keys.Action(km, scopeMenu) {
	case "close":
		return Result{Pop: true}
	case "select":
		it, ok := s.Selected()
		if !ok {
			return Result{Pop: true}
		}
		if it.Disabled {
			return Result{Pop: true, Cmd: StatusCmd(it.Reason)}
		}
		return Result{Pop: true, Command: it.CommandID}
	case "menu-nav":
		var cmd tea.Cmd
		s.list, cmd = s.list.Update(km)
		return Result{Cmd: cmd}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(km)
	s.refresh()
	return Result{Cmd: cmd}
}

func (s *MenuScreen) refresh() {
	items := s.search(strings.TrimSpace(s.input.Value()))
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, menuItem{it})
	}
	_ = s.list.SetItems(ls)
	s.list.ResetSelected()
}

func (s *MenuScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(4, height-3))
	return screenTitleStyle.Render(s.title) + "\n" + s.input.View() + "\n" + s.list.View()
}
