package cli

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
)

// Styles for console output. lipgloss degrades these to plain text on
// terminals without color support.
var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)
