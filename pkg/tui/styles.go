package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorLime  = lipgloss.Color("#84cc16")
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorDim   = lipgloss.Color("#737373")
	colorWhite = lipgloss.Color("#f5f5f5")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	accentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLime)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	doneStyle = lipgloss.NewStyle().
			Foreground(colorLime)

	activeStyle = lipgloss.NewStyle().
			Foreground(colorLime).
			Bold(true).
			Underline(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	badgeStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	expandedCardStyle = cardStyle.
				BorderForeground(colorLime)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)
)

const (
	markDone    = "✓"
	markActive  = "●"
	markPending = "○"
	badge       = "✓ Complete"
)
