package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	bodyWidth := max(1, m.width-2)

	var body string
	if base := m.screens.Base(); base != nil && bodyHeight > 0 {
		body = lipgloss.NewStyle().Padding(0, 1).Render(base.View(bodyWidth, bodyHeight))
	}
	if top := m.screens.Top(); top != nil && isModal(top) && bodyHeight > 0 {
		popup := top.View(min(48, max(20, m.width-12)), max(6, bodyHeight-4))
		body = RenderPopup(body, popup, max(1, m.width), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, body, status, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(" " + m.table.Labels.AppTitle)
	right := headerTagStyle.Render(m.table.Tag.String() + " ")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	line := left + headerBarStyle.Render(strings.Repeat(" ", gap)) + right
	return renderHeaderBar(headerBarStyle, max(1, m.width), line)
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func separator(width int) string {
	return separatorStyle.Render(strings.Repeat("─", max(1, width)))
}
