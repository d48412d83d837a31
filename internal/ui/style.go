package ui

import "github.com/charmbracelet/lipgloss"

// Styles for status and diff rendering.
var (
	WarnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	OkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	BreakingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	HeaderStyle   = lipgloss.NewStyle().Bold(true)
)

// Warn renders s in the warning style.
func Warn(s string) string { return WarnStyle.Render(s) }

// Ok renders s in the success style.
func Ok(s string) string { return OkStyle.Render(s) }
