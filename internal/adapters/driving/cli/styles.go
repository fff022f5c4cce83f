package cli

import "github.com/charmbracelet/lipgloss"

// Output styles. lipgloss drops colour when output is not a terminal.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")) // Red
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)
