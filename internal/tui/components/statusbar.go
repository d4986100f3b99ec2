package components

import (
	"fmt"

	"grantwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with refresh state and the
// age of the loaded dataset.
func RenderStatusBar(width int, dataAge string, autoRefresh, refreshing bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [r]efresh  [q]uit"

	right := ""
	if refreshing {
		right = "refreshing… "
	} else if dataAge != "" {
		right = fmt.Sprintf("Data: %s ", dataAge)
	}
	if autoRefresh {
		right = "auto " + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
