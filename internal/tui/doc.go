// Package tui is the terminal front end of the localization demo.
//
// Model owns the screen stack, the key and command registries and the
// navigation state from package flow. Screens translate key presses into
// flow events or command ids and never touch the stack themselves; Model
// runs flow.Step and carries out the resulting effects.
//
// Scopes used for key bindings:
//   - screen:selection, screen:search (selection screen while typing)
//   - screen:detail
//   - screen:menu, screen:history (modal popups)
package tui
