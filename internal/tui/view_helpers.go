package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPage frames data under a bold title.
func renderPage(title, data string) string {
	if strings.TrimSpace(data) == "" {
		data = "-"
	}
	return pageStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		sectionStyle.Render(data),
	))
}

// renderFields aligns label/value pairs in two columns.
func renderFields(pairs ...[2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, p[0]))
		lines = append(lines, label+"  "+p[1])
	}
	return strings.Join(lines, "\n")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
