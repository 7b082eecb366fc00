package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fexplorer/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpOverlaySections = []helpOverlaySection{
	{
		title: "Navigation",
		entries: []helpOverlayEntry{
			{keys: "↑/↓ j/k", desc: "Move selection"},
			{keys: "PgUp/PgDn", desc: "Move one page"},
			{keys: "Home/End g/G", desc: "First / last entry"},
			{keys: "↵ or →", desc: "Open folder or file"},
			{keys: "← or Bksp", desc: "Parent folder"},
			{keys: "[ / ]", desc: "History back/forward"},
			{keys: "~", desc: "Go home"},
			{keys: ": or Ctrl+L", desc: "Type a path"},
		},
	},
	{
		title: "Search & Filter",
		entries: []helpOverlayEntry{
			{keys: "/", desc: "Search current folder"},
			{keys: "Tab or f", desc: "Cycle file type filter"},
			{keys: "Esc", desc: "Clear search"},
		},
	},
	{
		title: "Files",
		entries: []helpOverlayEntry{
			{keys: "n", desc: "New folder"},
			{keys: "F2 or R", desc: "Rename"},
			{keys: "d or Del", desc: "Delete"},
			{keys: "i", desc: "Properties"},
			{keys: "r or F5", desc: "Refresh"},
		},
	},
	{
		title: "Favorites",
		entries: []helpOverlayEntry{
			{keys: "*", desc: "Add current folder"},
			{keys: "b", desc: "Show favorites"},
		},
	},
	{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "q", desc: "Quit"},
			{keys: "Ctrl+C", desc: "Quit immediately"},
			{keys: "?", desc: "Close this help"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 32)
	for i, section := range helpOverlaySections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	return fmt.Sprintf("  %s %s", textutil.PadRight(entry.keys, 14), entry.desc)
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillRow(0, w, y, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	if titleWidth := textutil.DisplayWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	maxRow := h - 1
	for _, line := range buildHelpOverlayLines() {
		if row >= maxRow {
			break
		}
		text := textutil.Truncate(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 0 {
		footer := textutil.Truncate("? toggle · Esc close", w)
		r.drawTextLine(0, h-1, w, footer, headerStyle)
	}
}
