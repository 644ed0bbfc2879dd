package tui

import (
	"strings"

	"github.com/jask/localedemo/internal/flow"
)

// Choice is a single-selection control over a fixed option list. The index
// can never leave the option range.
type Choice struct {
	label   string
	options []string
	index   int
}

func NewChoice(label string, options []string, index int) *Choice {
	c := &Choice{label: label, options: append([]string(nil), options...)}
	c.Set(index)
	return c
}

func (c *Choice) Index() int { return c.index }

func (c *Choice) Selected() string {
	if len(c.options) == 0 {
		return ""
	}
	return c.options[c.index]
}

// Set moves to i, clamped, and reports whether the index changed.
func (c *Choice) Set(i int) bool {
	if i < 0 {
		i = 0
	}
	if n := len(c.options); i >= n {
		i = max(0, n-1)
	}
	changed := i != c.index
	c.index = i
	return changed
}

func (c *Choice) Move(delta int) bool {
	return c.Set(c.index + delta)
}

// Changed builds the change notification for the current index.
func (c *Choice) Changed(committed bool) flow.SelectionChanged {
	ev := flow.SelectionChanged{Index: c.index}
	if committed {
		ev.Context |= flow.ContextChangeOption
	}
	return ev
}

func (c *Choice) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(c.label) + " " + choiceStyle.Render("◂ "+c.Selected()+" ▸"))
	for i, opt := range c.options {
		b.WriteString("\n")
		if i == c.index {
			b.WriteString(cursorStyle.Render("> " + opt))
			continue
		}
		b.WriteString(mutedStyle.Render("  " + opt))
	}
	return b.String()
}
