package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/gitdo/internal/task"
)

var (
	// Colors
	successColor    = lipgloss.Color("#87AF87") // Muted sage for success
	pendingColor    = lipgloss.Color("#D7AF5F") // Amber for pending
	inProgressColor = lipgloss.Color("#5FAFAF") // Teal for in-progress
	subtleColor     = lipgloss.Color("#666666") // Gray for secondary text

	// SuccessStyle for confirmation messages
	successStyle = lipgloss.NewStyle().Foreground(successColor)

	// SubtleStyle for hints and IDs
	subtleStyle = lipgloss.NewStyle().Foreground(subtleColor)

	// WarnStyle for no-op notices
	warnStyle = lipgloss.NewStyle().Foreground(pendingColor)

	// Per-status styles for list output
	statusStyles = map[string]lipgloss.Style{
		task.StatusPending:    lipgloss.NewStyle().Foreground(pendingColor),
		task.StatusInProgress: lipgloss.NewStyle().Foreground(inProgressColor),
		task.StatusCompleted:  lipgloss.NewStyle().Foreground(successColor),
	}
)

// checkmark is the prefix for success messages.
func checkmark() string {
	return successStyle.Render("✓")
}

// renderStatus colors a status string for table output.
func renderStatus(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return status
}
