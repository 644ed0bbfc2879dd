package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/localedemo/internal/database/repository"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type viewRecordedMsg struct {
	Country string
	Count   int
	Err     error
}

type historyLoadedMsg struct {
	Views  []repository.View
	Totals []repository.CountryCount
	Err    error
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
