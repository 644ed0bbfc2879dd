package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/localedemo/internal/catalog"
	"github.com/jask/localedemo/internal/flow"
)

// DefaultCommands are the menu entries of the selection screen plus the
// hidden command that opens the menu itself.
func DefaultCommands(table *catalog.Table) []Command {
	l := table.Labels
	return []Command{
		{
			ID:          "view",
			Name:        l.MenuView,
			Description: l.MenuViewDesc,
			Scopes:      []string{scopeSelection},
			Order:       1,
			Execute: func(m *Model) tea.Cmd {
				return m.apply(flow.ViewRequested{})
			},
		},
		{
			ID:          "history",
			Name:        l.MenuHistory,
			Description: l.MenuHistoryDesc,
			Scopes:      []string{scopeSelection},
			Order:       2,
			Disabled: func(m *Model) (bool, string) {
				if m.history == nil {
					return true, m.table.Labels.HistoryOff
				}
				return false, ""
			},
			Execute: func(m *Model) tea.Cmd {
				return m.loadHistory()
			},
		},
		{
			ID:          "close",
			Name:        l.MenuClose,
			Description: l.MenuCloseDesc,
			Scopes:      []string{scopeSelection},
			Order:       3,
			Execute: func(m *Model) tea.Cmd {
				return m.apply(flow.BackRequested{})
			},
		},
		{
			ID:     "menu",
			Scopes: []string{scopeSelection},
			Hidden: true,
			Execute: func(m *Model) tea.Cmd {
				scope := m.ActiveScope()
				m.screens.Push(NewMenuScreen(m.table.Labels.MenuTitle, m.keys, func(q string) []CommandResult {
					return m.commands.Search(q, scope, m)
				}))
				return nil
			},
		},
	}
}
