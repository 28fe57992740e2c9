package tui

import (
	"fmt"
	"strings"

	"github.com/ChaoticWyrme/tui-rename/pkg/rename/logging"
)

// LogViewerModel renders the diagnostic console over the logging ring
// buffer. Toggled with Ctrl+L.
type LogViewerModel struct {
	offset   int
	minLevel logging.Level
	width    int
	height   int
}

// NewLogViewer creates a log viewer showing debug and above.
func NewLogViewer() LogViewerModel {
	return LogViewerModel{minLevel: logging.LevelDebug, width: 80, height: 24}
}

// SetDimensions updates the viewer size.
func (m *LogViewerModel) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// HandleKey handles scrolling and level filtering.
func (m *LogViewerModel) HandleKey(key string) {
	switch key {
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "down", "j":
		m.offset++
	case "home", "g":
		m.offset = 0
	case "end", "G":
		m.offset = 1 << 30 // clamped at render time
	case "f":
		// Cycle the minimum level filter.
		m.minLevel = (m.minLevel + 1) % 4
		m.offset = 0
	case "c":
		if buffer := logging.GetBuffer(); buffer != nil {
			buffer.Clear()
		}
		m.offset = 0
	}
}

// View renders the console.
func (m LogViewerModel) View() string {
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var b strings.Builder
	buffer := logging.GetBuffer()

	b.WriteString(titleStyle.Render("  Diagnostic console"))
	b.WriteString("  ")
	status := fmt.Sprintf("level >= %s", m.minLevel)
	if buffer != nil {
		status = fmt.Sprintf("%d entries, level >= %s", buffer.Len(), m.minLevel)
	}
	b.WriteString(mutedTextStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n")

	if buffer == nil {
		b.WriteString(mutedTextStyle.Render("  logging buffer inactive"))
		b.WriteString("\n")
		return outerBoxStyle.Width(m.width - 2).Render(b.String())
	}

	entries := filterEntries(buffer.Entries(), m.minLevel)
	visible := m.height - 6
	if visible < 3 {
		visible = 3
	}
	offset := clampScroll(m.offset, len(entries), visible)

	end := offset + visible
	if end > len(entries) {
		end = len(entries)
	}
	for _, e := range entries[offset:end] {
		line := fmt.Sprintf("  %s %-5s %-10s %s",
			e.Time.Format("15:04:05"), e.Level, e.Component,
			truncate(e.Message, contentWidth-28))
		switch {
		case e.Level >= logging.LevelError:
			line = errorTextStyle.Render(line)
		case e.Level == logging.LevelWarn:
			line = warningTextStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(entries) == 0 {
		b.WriteString(mutedTextStyle.Render("  no log entries"))
		b.WriteString("\n")
	}

	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n")
	b.WriteString("  " + keyStyle.Render("[j/k]") + " " + keyDescStyle.Render("Scroll") +
		"  " + keyStyle.Render("[f]") + " " + keyDescStyle.Render("Filter") +
		"  " + keyStyle.Render("[c]") + " " + keyDescStyle.Render("Clear") +
		"  " + keyStyle.Render("[Ctrl+L]") + " " + keyDescStyle.Render("Close"))
	b.WriteString("\n")

	return outerBoxStyle.Width(m.width - 2).Render(b.String())
}

// filterEntries returns entries at or above the given level.
func filterEntries(entries []logging.Entry, minLevel logging.Level) []logging.Entry {
	result := make([]logging.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Level >= minLevel {
			result = append(result, e)
		}
	}
	return result
}

// clampScroll keeps the scroll offset within bounds.
func clampScroll(offset, total, visible int) int {
	if total <= visible {
		return 0
	}
	maxOffset := total - visible
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
