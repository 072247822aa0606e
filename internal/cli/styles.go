package cli

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	embyGreen = lipgloss.Color("#52B54B")
	dimGray   = lipgloss.Color("#6B7280")
	lightGray = lipgloss.Color("#9CA3AF")
	white     = lipgloss.Color("#F9FAFB")
	red       = lipgloss.Color("#EF4444")
)

// Text styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(white).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(embyGreen)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lightGray)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(white).
			Background(embyGreen).
			Bold(true)
)
