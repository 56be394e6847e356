// Package style holds the colors and icons shared by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
)

// Success renders msg with a check mark in the success color.
func Success(msg string) string {
	return lipgloss.NewStyle().Foreground(Green).Render(Check + " " + msg)
}

// Changed renders msg with a tilde in the warning color.
func Changed(msg string) string {
	return lipgloss.NewStyle().Foreground(Yellow).Render(Tilde + " " + msg)
}

// Muted renders msg in the secondary text color.
func Muted(msg string) string {
	return lipgloss.NewStyle().Foreground(Slate).Render(msg)
}
