package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — amber-on-dark, the look of a rig's front panel
var (
	Primary = lipgloss.Color("#F59E0B") // Amber
	Accent  = lipgloss.Color("#38BDF8") // Sky
	Success = lipgloss.Color("#4ADE80") // Green
	Error   = lipgloss.Color("#F87171") // Red
	Text    = lipgloss.Color("#E7E5E4") // Warm white
	TextDim = lipgloss.Color("#78716C") // Stone
	BgCard  = lipgloss.Color("#1C1917") // Near black
	Border  = lipgloss.Color("#44403C") // Dark stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Question display
var (
	Meta = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Figure = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Primary)
)
