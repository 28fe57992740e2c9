// Package tui provides the interactive terminal interface for tui-rename.
// It uses Charmbracelet's Bubble Tea, Bubbles, and Lip Gloss.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the TUI.
var (
	// Primary colors
	primaryColor = lipgloss.Color("#7D56F4")
	accentColor  = lipgloss.Color("#00D9FF")

	// Status colors
	successColor = lipgloss.Color("#28A745")
	warningColor = lipgloss.Color("#FFC107")
	dangerColor  = lipgloss.Color("#DC3545")

	// Neutral colors
	mutedColor     = lipgloss.Color("#666666")
	borderColor    = lipgloss.Color("#333333")
	highlightColor = lipgloss.Color("#1A1A2E")
)

// Box styles for containers.
var (
	// outerBoxStyle is the main container style.
	outerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	// dividerStyle creates horizontal dividers.
	dividerStyle = lipgloss.NewStyle().
			Foreground(borderColor)

	// dialogBoxStyle is the modal dialog container.
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)
)

// Text styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	successTextStyle = lipgloss.NewStyle().
				Foreground(successColor)

	warningTextStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	// inlineErrorStyle renders the pattern status line.
	inlineErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(dangerColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)

// List styles.
var (
	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor)

	selectedItemStyle = lipgloss.NewStyle().
				Background(highlightColor).
				Foreground(lipgloss.Color("#FFFFFF"))

	normalItemStyle = lipgloss.NewStyle()

	fileDetailStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(6).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// Key hint styles.
var (
	keyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	keyDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// Dialog styles.
var (
	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(warningColor)

	dialogTextStyle = lipgloss.NewStyle()

	activeButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Padding(0, 2).
				Bold(true)

	inactiveButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#AAAAAA")).
				Background(lipgloss.Color("#2A2A2A")).
				Padding(0, 2)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#555555")).
				Background(lipgloss.Color("#1A1A1A")).
				Strikethrough(true).
				Padding(0, 2)
)

// renderDivider renders a horizontal divider of the given width.
func renderDivider(width int) string {
	if width < 0 {
		width = 0
	}
	line := make([]rune, width)
	for i := range line {
		line[i] = '─'
	}
	return dividerStyle.Render(string(line))
}

// center centers text within the given width.
func center(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// truncate shortens s to fit width, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	runes := []rune(s)
	for len(runes) < width {
		runes = append(runes, ' ')
	}
	return string(runes)
}
