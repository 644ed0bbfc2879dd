// Package catalog holds the localized country table shown by the demo and
// the static labels of both screens. Everything is resolved once, at
// startup, so rendering never has to handle a lookup failure.
package catalog

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/jask/localedemo/internal/resources"
)

// CountryIDs fixes the table order. Index i of the choice control selects
// CountryIDs[i].
var CountryIDs = []string{"us", "china", "germany"}

// Record is one country's display strings.
type Record struct {
	ID         string
	Name       string
	Population string
	Language   string
	Cities     string
}

// Labels are the fixed captions of the selection and detail screens.
type Labels struct {
	AppTitle     string
	Instructions string
	ChoiceLabel  string
	SearchPrompt string
	Choices      []string

	Population string
	Language   string
	Cities     string

	MenuTitle       string
	MenuView        string
	MenuViewDesc    string
	MenuHistory     string
	MenuHistoryDesc string
	MenuClose       string
	MenuCloseDesc   string

	HistoryTitle string
	HistoryEmpty string
	Ready        string
	HistoryOff   string
}

// Table is the immutable record table plus labels for one locale.
type Table struct {
	Tag     language.Tag
	Labels  Labels
	records []Record
	bundle  resources.Bundle
}

// Load resolves every label and record from b. Any missing key fails the load.
func Load(b resources.Bundle) (*Table, error) {
	l := lookup{b: b}
	t := &Table{Tag: b.Tag(), bundle: b}
	t.Labels = Labels{
		AppTitle:        l.get("app.title"),
		Instructions:    l.get("screen.instructions"),
		ChoiceLabel:     l.get("choice.label"),
		SearchPrompt:    l.get("choice.search"),
		Choices:         l.array("choice.countries"),
		Population:      l.get("detail.population"),
		Language:        l.get("detail.language"),
		Cities:          l.get("detail.cities"),
		MenuTitle:       l.get("menu.title"),
		MenuView:        l.get("menu.view"),
		MenuViewDesc:    l.get("menu.view.desc"),
		MenuHistory:     l.get("menu.history"),
		MenuHistoryDesc: l.get("menu.history.desc"),
		MenuClose:       l.get("menu.close"),
		MenuCloseDesc:   l.get("menu.close.desc"),
		HistoryTitle:    l.get("history.title"),
		HistoryEmpty:    l.get("history.empty"),
		Ready:           l.get("status.ready"),
		HistoryOff:      l.get("status.history_off"),
	}
	for _, id := range CountryIDs {
		prefix := "country." + id + "."
		t.records = append(t.records, Record{
			ID:         id,
			Name:       l.get(prefix + "name"),
			Population: l.get(prefix + "population"),
			Language:   l.get(prefix + "language"),
			Cities:     l.get(prefix + "cities"),
		})
	}
	if l.err != nil {
		return nil, fmt.Errorf("catalog: %w", l.err)
	}
	if len(t.Labels.Choices) != len(t.records) {
		return nil, fmt.Errorf("catalog: %d choices for %d countries", len(t.Labels.Choices), len(t.records))
	}
	return t, nil
}

// Len is the number of records.
func (t *Table) Len() int { return len(t.records) }

// At returns record i. i must be in [0, Len()).
func (t *Table) At(i int) Record { return t.records[i] }

// ByID finds a record by country id.
func (t *Table) ByID(id string) (Record, bool) {
	for _, r := range t.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Viewed formats the status line shown after a detail display.
func (t *Table) Viewed(country string, count int) string {
	s, err := t.bundle.Template("status.viewed", map[string]any{"Country": country, "Count": count})
	if err != nil {
		return fmt.Sprintf("%s (%d)", country, count)
	}
	return s
}

// lookup records the first error and keeps going so Load stays linear.
type lookup struct {
	b   resources.Bundle
	err error
}

func (l *lookup) get(key string) string {
	s, err := l.b.String(key)
	if err != nil && l.err == nil {
		l.err = err
	}
	return s
}

func (l *lookup) array(key string) []string {
	s, err := l.b.StringArray(key)
	if err != nil && l.err == nil {
		l.err = err
	}
	return s
}
