package tui

const (
	scopeSelection = "screen:selection"
	scopeSearch    = "screen:search"
	scopeDetail    = "screen:detail"
	scopeMenu      = "screen:menu"
	scopeHistory   = "screen:history"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"up", "k"}, Action: "choice-prev", Description: "prev", Scopes: []string{scopeSelection}},
		{Keys: []string{"down", "j"}, Action: "choice-next", Description: "next", Scopes: []string{scopeSelection}},
		{Keys: []string{"enter", "space"}, Action: "commit", Description: "select", Scopes: []string{scopeSelection}},
		{Keys: []string{"enter"}, Action: "commit", Description: "select", Scopes: []string{scopeSearch}},
		{Keys: []string{"v"}, Action: "view", Description: "view", Scopes: []string{scopeSelection}},
		{Keys: []string{"/"}, Action: "find", Description: "find", Scopes: []string{scopeSelection}},
		{Keys: []string{"h"}, Action: "history", Description: "history", Scopes: []string{scopeSelection}},
		{Keys: []string{"m", "ctrl+k"}, Action: "open-menu", Description: "menu", Scopes: []string{scopeSelection}},
		{Keys: []string{"q", "esc"}, Action: "back", Description: "quit", Scopes: []string{scopeSelection}},
		{Keys: []string{"esc", "backspace", "q"}, Action: "back", Description: "back", Scopes: []string{scopeDetail}},
		{Keys: []string{"esc"}, Action: "close", Description: "cancel", Scopes: []string{scopeSearch, scopeMenu, scopeHistory}},
		{Keys: []string{"enter", "q"}, Action: "close", Description: "close", Scopes: []string{scopeHistory}},
		{Keys: []string{"up", "down"}, Action: "menu-nav", Description: "move", Scopes: []string{scopeMenu}},
		{Keys: []string{"enter"}, Action: "select", Description: "run", Scopes: []string{scopeMenu}},
	}
}
