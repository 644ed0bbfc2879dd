package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/localedemo/internal/catalog"
	"github.com/jask/localedemo/internal/flow"
)

// DetailFields is what the detail screen currently displays.
type DetailFields struct {
	Country    string
	Population string
	Language   string
	Cities     string
}

// DetailScreen renders one record as read-only text. It takes no focus and
// only reacts to back navigation.
type DetailScreen struct {
	table  *catalog.Table
	keys   *KeyRegistry
	fields DetailFields
}

func NewDetailScreen(table *catalog.Table, keys *KeyRegistry) *DetailScreen {
	return &DetailScreen{table: table, keys: keys}
}

// Load overwrites all four fields with record index. The caller guarantees
// 0 <= index < table.Len().
func (d *DetailScreen) Load(index int) {
	r := d.table.At(index)
	d.fields = DetailFields{
		Country:    r.Name,
		Population: r.Population,
		Language:   r.Language,
		Cities:     r.Cities,
	}
}

func (d *DetailScreen) Fields() DetailFields { return d.fields }

func (d *DetailScreen) Title() string      { return d.fields.Country }
func (d *DetailScreen) Scope() string      { return scopeDetail }
func (d *DetailScreen) OnSavePrompt() bool { return true }

func (d *DetailScreen) Update(msg tea.Msg) Result {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return Result{}
	}
	if d.keys.IsAction(km, "back", scopeDetail) {
		return Result{Events: []flow.Event{flow.BackRequested{}}}
	}
	return Result{}
}

func (d *DetailScreen) View(width, height int) string {
	labels := d.table.Labels
	rows := [][2]string{
		{labels.Population, d.fields.Population},
		{labels.Language, d.fields.Language},
		{labels.Cities, d.fields.Cities},
	}
	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r[0]))
	}
	lines := []string{screenTitleStyle.Render(d.fields.Country), separator(width)}
	for _, r := range rows {
		label := labelStyle.Width(labelW + 2).Render(r[0])
		value := valueStyle.Width(max(1, width-labelW-2)).Render(r[1])
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, value))
	}
	return fitHeight(strings.Join(lines, "\n"), height)
}
