package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dialogButton is one named button in a modal dialog.
type dialogButton struct {
	label    string
	focused  bool
	disabled bool
}

// renderDialog renders a modal dialog with a title, body text, and an
// ordered row of buttons.
func renderDialog(title, body string, buttons []dialogButton, maxWidth int) string {
	var content strings.Builder

	content.WriteString(dialogTitleStyle.Render(title))
	content.WriteString("\n\n")

	bodyWidth := maxWidth - 8
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	content.WriteString(dialogTextStyle.Width(bodyWidth).Render(body))
	content.WriteString("\n\n")

	rendered := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		style := inactiveButtonStyle
		switch {
		case btn.disabled:
			style = disabledButtonStyle
		case btn.focused:
			style = activeButtonStyle
		}
		rendered = append(rendered, style.Render(btn.label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(rendered, "  "))
	content.WriteString(center(row, bodyWidth))

	return dialogBoxStyle.Render(content.String())
}

// overlayDialog centers a dialog over a background view.
func overlayDialog(bg, dialog string, width, height int) string {
	dialogLines := strings.Split(dialog, "\n")
	bgLines := strings.Split(bg, "\n")

	dialogHeight := len(dialogLines)
	startRow := (height - dialogHeight) / 2
	if startRow < 0 {
		startRow = 0
	}

	dialogWidth := lipgloss.Width(dialog)
	startCol := (width - dialogWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	var result []string
	total := len(bgLines)
	if startRow+dialogHeight > total {
		total = startRow + dialogHeight
	}
	for i := 0; i < total; i++ {
		if i < startRow || i >= startRow+dialogHeight {
			if i < len(bgLines) {
				result = append(result, bgLines[i])
			} else {
				result = append(result, "")
			}
			continue
		}

		dialogLine := dialogLines[i-startRow]
		if i < len(bgLines) {
			bgLine := bgLines[i]
			if startCol > len(bgLine) {
				result = append(result, strings.Repeat(" ", startCol)+dialogLine)
			} else {
				result = append(result, bgLine[:startCol]+dialogLine)
			}
		} else {
			result = append(result, strings.Repeat(" ", startCol)+dialogLine)
		}
	}

	return strings.Join(result, "\n")
}

// stackDialogs overlays dialogs bottom-first over a background; later
// dialogs land slightly lower so both stay readable when two are open.
func stackDialogs(bg string, dialogs []string, width, height int) string {
	out := bg
	offset := 0
	for _, d := range dialogs {
		out = overlayDialog(out, d, width, height+offset)
		offset += 4
	}
	return out
}
