package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out title, body and the hot key footer of a screen.
func renderPage(title, data, hotKeys string) string {
	body := strings.TrimRight(data, "\n")
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	footer := "ctrl+c: выход"
	if strings.TrimSpace(hotKeys) != "" {
		footer = hotKeys + " │ " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		uiDivider,
		"",
		pageBodyStyle.Render(body),
		"",
		uiDivider,
		helpStyle.Render(footer),
	)
}

// fitText cuts v to max runes and marks the cut with an ellipsis.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}
