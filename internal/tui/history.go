package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/localedemo/internal/catalog"
	"github.com/jask/localedemo/internal/database/repository"
)

const historyTimeFormat = "2006-01-02 15:04"

// HistoryScreen is a read-only popup of recent detail views.
type HistoryScreen struct {
	table  *catalog.Table
	keys   *KeyRegistry
	views  []repository.View
	totals []repository.CountryCount
}

func NewHistoryScreen(table *catalog.Table, keys *KeyRegistry, views []repository.View, totals []repository.CountryCount) *HistoryScreen {
	return &HistoryScreen{table: table, keys: keys, views: views, totals: totals}
}

func (h *HistoryScreen) Title() string { return h.table.Labels.HistoryTitle }
func (h *HistoryScreen) Scope() string { return scopeHistory }
func (h *HistoryScreen) Modal() bool   { return true }

func (h *HistoryScreen) Update(msg tea.Msg) Result {
	if km, ok := msg.(tea.KeyMsg); ok && h.keys.IsAction(km, "close", scopeHistory) {
		return Result{Pop: true}
	}
	return Result{}
}

// name prefers the current locale's name over the stored id.
func (h *HistoryScreen) name(countryID string) string {
	if r, ok := h.table.ByID(countryID); ok {
		return r.Name
	}
	return countryID
}

func (h *HistoryScreen) View(width, height int) string {
	lines := []string{screenTitleStyle.Render(h.table.Labels.HistoryTitle)}
	if len(h.views) == 0 {
		lines = append(lines, mutedStyle.Render(h.table.Labels.HistoryEmpty))
		return fitHeight(strings.Join(lines, "\n"), height)
	}
	if len(h.totals) > 0 {
		parts := make([]string, 0, len(h.totals))
		for _, t := range h.totals {
			parts = append(parts, fmt.Sprintf("%s %d", h.name(t.CountryID), t.Count))
		}
		lines = append(lines, mutedStyle.Render(strings.Join(parts, " · ")))
	}
	lines = append(lines, separator(width))
	for _, v := range h.views {
		when := v.ViewedAt.Local().Format(historyTimeFormat)
		lines = append(lines, fmt.Sprintf("%s  %s  %s", mutedStyle.Render(when), valueStyle.Render(h.name(v.CountryID)), mutedStyle.Render(v.Locale)))
	}
	return fitHeight(strings.Join(lines, "\n"), height)
}
