package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestCommandSearchOrderAndHidden(t *testing.T) {
	m := newModel(t, Options{History: &memHistory{}})
	results := m.commands.Search("", scopeSelection, &m)
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.CommandID)
		require.False(t, r.Disabled)
	}
	require.Equal(t, []string{"view", "history", "close"}, ids)

	require.Empty(t, m.commands.Search("", scopeDetail, &m), "menu commands belong to the list")
	require.Len(t, m.commands.Search("recent", scopeSelection, &m), 1)
}

func TestCommandExecuteUnknownAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "off", Disabled: func(*Model) (bool, string) { return true, "" }},
		{ID: "noop"},
		{Name: "no id is ignored"},
	})
	m := newModel(t, Options{})

	msg := reg.Execute("missing", &m)()
	require.Equal(t, StatusMsg{Text: "Unknown command: missing"}, msg)

	msg = reg.Execute("off", &m)()
	require.Equal(t, StatusMsg{Text: "command is disabled"}, msg)

	require.Nil(t, reg.Execute("noop", &m))
}

func TestErrorCmd(t *testing.T) {
	require.Equal(t, StatusMsg{}, ErrorCmd(nil)())
	var cmd tea.Cmd = ErrorCmd(errString("boom"))
	require.Equal(t, StatusMsg{Text: "boom", IsErr: true}, cmd())
}

type errString string

func (e errString) Error() string { return string(e) }
