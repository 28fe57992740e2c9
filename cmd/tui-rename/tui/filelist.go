package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ChaoticWyrme/tui-rename/pkg/rename/plan"
)

// Candidate carries the metadata captured for one candidate file at startup.
type Candidate struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// SortColumn identifies the column the file list is ordered by.
type SortColumn int

const (
	// SortInsertion keeps the original argument order.
	SortInsertion SortColumn = iota
	// SortOriginal orders by current name.
	SortOriginal
	// SortRenamed orders by proposed name.
	SortRenamed
)

// FileListModel renders the two-column candidate table with a cursor,
// scrolling, and per-column sorting. Rows are identified by insertion index,
// so re-sorting never loses track of which file is which.
type FileListModel struct {
	items []plan.Item // shared with the app model; recomputed in place
	meta  []Candidate // parallel to items by insertion index

	// order maps display position to insertion index.
	order  []int
	sortBy SortColumn

	cursor int // position within order
	offset int // scroll offset
	width  int
	height int // rows available for the list body
}

// NewFileList creates a list over the given items. The meta slice is
// parallel to items by insertion index.
func NewFileList(items []plan.Item, meta []Candidate) FileListModel {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	return FileListModel{
		items:  items,
		meta:   meta,
		order:  order,
		width:  80,
		height: 10,
	}
}

// SetDimensions updates the width and body height.
func (m *FileListModel) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	if m.height < 3 {
		m.height = 3
	}
	m.ensureVisible()
}

// SortBy orders the list by the given column and re-sorts immediately.
func (m *FileListModel) SortBy(col SortColumn) {
	m.sortBy = col
	m.Resort()
}

// Resort re-applies the current sort order. Ordering is lexicographic on the
// column's string value; ties keep insertion order (the sort starts from the
// identity permutation and is stable).
func (m *FileListModel) Resort() {
	current := -1
	if len(m.order) > 0 {
		current = m.order[m.cursor]
	}

	for i := range m.order {
		m.order[i] = i
	}
	switch m.sortBy {
	case SortOriginal:
		sort.SliceStable(m.order, func(a, b int) bool {
			return m.items[m.order[a]].Original < m.items[m.order[b]].Original
		})
	case SortRenamed:
		sort.SliceStable(m.order, func(a, b int) bool {
			return m.items[m.order[a]].Renamed < m.items[m.order[b]].Renamed
		})
	}

	// Keep the cursor on the row it was on before the sort.
	if current >= 0 {
		for pos, idx := range m.order {
			if idx == current {
				m.cursor = pos
				break
			}
		}
	}
	m.ensureVisible()
}

// HandleKey handles navigation and sorting keys.
func (m *FileListModel) HandleKey(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
	case "down", "j":
		if m.cursor < len(m.order)-1 {
			m.cursor++
			m.ensureVisible()
		}
	case "home", "g":
		m.cursor = 0
		m.offset = 0
	case "end", "G":
		if len(m.order) > 0 {
			m.cursor = len(m.order) - 1
			m.ensureVisible()
		}
	case "pgup":
		m.cursor -= m.visibleRows()
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.ensureVisible()
	case "pgdown":
		m.cursor += m.visibleRows()
		if m.cursor >= len(m.order) {
			m.cursor = len(m.order) - 1
		}
		m.ensureVisible()
	case "o":
		m.SortBy(SortOriginal)
	case "r":
		m.SortBy(SortRenamed)
	}
}

// View renders the table.
func (m FileListModel) View(focused bool) string {
	var b strings.Builder

	colWidth := (m.width * 48) / 100
	if colWidth < 10 {
		colWidth = 10
	}

	header := "    " + padRight(m.columnTitle(SortOriginal), colWidth) + "  " +
		padRight(m.columnTitle(SortRenamed), colWidth)
	b.WriteString(columnHeaderStyle.Render(header))
	b.WriteString("\n")

	visible := m.visibleRows()
	for pos := m.offset; pos < m.offset+visible && pos < len(m.order); pos++ {
		idx := m.order[pos]
		isCursor := pos == m.cursor

		b.WriteString(m.renderRow(idx, colWidth, isCursor && focused))
		b.WriteString("\n")

		if isCursor {
			b.WriteString(m.renderDetails(idx))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// columnTitle returns the header text, marking the active sort column.
func (m FileListModel) columnTitle(col SortColumn) string {
	title := "Original"
	if col == SortRenamed {
		title = "Renamed"
	}
	if m.sortBy == col {
		return title + " ▾"
	}
	return title
}

// renderRow renders one table row.
func (m FileListModel) renderRow(idx, colWidth int, isCursor bool) string {
	it := m.items[idx]

	marker := "  "
	if isCursor {
		marker = cursorStyle.Render("> ")
	}

	original := padRight(truncate(it.Original, colWidth), colWidth)
	renamed := padRight(truncate(it.Renamed, colWidth), colWidth)

	if it.Renamed != it.Original {
		renamed = successTextStyle.Render(renamed)
	}

	line := "  " + marker + original + "  " + renamed
	if isCursor {
		return selectedItemStyle.Render(line)
	}
	return normalItemStyle.Render(line)
}

// renderDetails renders the metadata line under the cursor row.
func (m FileListModel) renderDetails(idx int) string {
	meta := m.meta[idx]
	details := fmt.Sprintf("%s  modified %s  %s",
		humanize.IBytes(uint64(meta.Size)),
		meta.ModTime.Format("2006-01-02 15:04"),
		truncate(meta.Path, m.width-30))
	return fileDetailStyle.Render(details)
}

// visibleRows returns how many table rows fit; the cursor row takes an extra
// detail line.
func (m FileListModel) visibleRows() int {
	rows := (m.height - 1) / 2 // header line, detail line for cursor
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureVisible adjusts the scroll offset to keep the cursor on screen.
func (m *FileListModel) ensureVisible() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Len returns the number of rows.
func (m FileListModel) Len() int { return len(m.order) }

// Cursor returns the insertion index of the row under the cursor, or -1 for
// an empty list.
func (m FileListModel) Cursor() int {
	if len(m.order) == 0 {
		return -1
	}
	return m.order[m.cursor]
}

// Order returns the current display order as insertion indices.
func (m FileListModel) Order() []int {
	out := make([]int, len(m.order))
	copy(out, m.order)
	return out
}
