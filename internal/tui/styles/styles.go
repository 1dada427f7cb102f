// Package styles centralizes the Lip Gloss styles used across the UI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5fd7ff")).
			PaddingLeft(1)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5f5fff")).
			PaddingLeft(1).
			PaddingRight(1)

	PaneFocusedStyle = PaneStyle.
				BorderForeground(lipgloss.Color("#ff5faf"))

	HelpStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("#a8a8a8")).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff005f")).
			Bold(true)

	// Result list colors
	ResultNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5fafff"))

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#969696"))

	ResultLineNumberStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7af00"))

	ResultMatchStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ff5f5f"))

	ResultSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#323232"))

	LoadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaf00"))
)
