package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
	"github.com/kk-code-lab/fexplorer/internal/listing"
	"github.com/kk-code-lab/fexplorer/internal/textutil"
	"github.com/kk-code-lab/fexplorer/internal/ui/view"
)

const (
	appTitle       = "fexplorer"
	sizeColWidth   = 9
	typeColWidth   = 8
	timeColWidth   = 16
	modifiedLayout = "2006-01-02 15:04"
	minNameWidth   = 12
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// columns holds the widths of the listing columns. A zero width hides the
// column.
type columns struct {
	name, size, kind, modified int
}

func computeColumns(w int) columns {
	cols := columns{size: sizeColWidth, kind: typeColWidth, modified: timeColWidth}
	cols.name = w - 1 - (cols.size + 1) - (cols.kind + 1) - (cols.modified + 1)
	if cols.name < minNameWidth {
		cols.name += cols.modified + 1
		cols.modified = 0
	}
	if cols.name < minNameWidth {
		cols.name += cols.kind + 1
		cols.kind = 0
	}
	if cols.name < minNameWidth {
		cols.name += cols.size + 1
		cols.size = 0
	}
	if cols.name < 0 {
		cols.name = 0
	}
	return cols
}

func (c columns) format(name, size, kind, modified string) string {
	var b strings.Builder
	b.WriteByte(' ')
	b.WriteString(textutil.PadRight(name, c.name))
	if c.size > 0 {
		b.WriteByte(' ')
		b.WriteString(textutil.PadLeft(size, c.size))
	}
	if c.kind > 0 {
		b.WriteByte(' ')
		b.WriteString(textutil.PadRight(kind, c.kind))
	}
	if c.modified > 0 {
		b.WriteByte(' ')
		b.WriteString(textutil.PadRight(modified, c.modified))
	}
	return b.String()
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *view.State) {
	r.screen.Clear()
	r.screen.HideCursor()
	w, h := r.screen.Size()

	if state.Mode == view.ModeHelp {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawColumnHeader(w)
	r.drawList(state, w, h)
	r.drawStatusLine(state, w, h)
	r.drawFooter(state, w, h)

	switch state.Mode {
	case view.ModeFavorites:
		r.drawFavoritesPanel(state, w, h)
	case view.ModeProperties:
		if props := state.Snapshot.Properties; props != nil {
			r.drawPropertiesPanel(*props, w, h)
		}
	}

	r.screen.Show()
}

// drawHeader renders the top bar with title and current path
func (r *Renderer) drawHeader(state *view.State, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, appTitle+" ", headerStyle.Bold(true))
	if endX < w {
		path := textutil.TruncateLeft(textutil.Sanitize(state.Snapshot.CurrentPath), w-endX)
		endX = r.drawTextLine(endX, 0, w-endX, path, headerStyle)
	}
	r.fillRow(endX, w, 0, headerStyle)
}

func (r *Renderer) drawColumnHeader(w int) {
	style := tcell.StyleDefault.Foreground(r.theme.ColumnFg).Underline(true)
	text := computeColumns(w).format("Name", "Size", "Type", "Modified")
	r.drawTextLine(0, 1, w, text, style)
}

func (r *Renderer) drawList(state *view.State, w, h int) {
	entries := state.Snapshot.Entries
	rows := state.ListRows()
	if avail := h - view.ChromeRows; avail < rows {
		rows = avail
	}
	cols := computeColumns(w)

	for row := 0; row < rows; row++ {
		idx := state.ScrollOffset + row
		if idx >= len(entries) {
			break
		}
		y := 2 + row
		entry := entries[idx]
		style := r.entryStyle(entry)
		if idx == state.SelectedIndex {
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}
		text := cols.format(entryCells(entry))
		endX := r.drawTextLine(0, y, w, text, style)
		r.fillRow(endX, w, y, style)
	}
}

func (r *Renderer) entryStyle(entry fsutil.Entry) tcell.Style {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.FileFg)
	switch {
	case entry.IsHidden():
		style = style.Foreground(r.theme.HiddenFg)
	case entry.IsSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	case entry.IsDir:
		style = style.Foreground(r.theme.DirectoryFg)
	}
	if entry.IsDir {
		style = style.Bold(true)
	}
	return style
}

// entryCells returns the name, size, type and modified columns for entry.
func entryCells(entry fsutil.Entry) (string, string, string, string) {
	name := textutil.Sanitize(entry.Name)
	if entry.IsParent {
		return name, "", "", ""
	}
	if entry.IsSymlink {
		name += "@"
	}

	size := ""
	if !entry.IsDir {
		size = listing.FormatSize(entry.Size)
	}
	modified := ""
	if !entry.Modified.IsZero() {
		modified = entry.Modified.Format(modifiedLayout)
	}
	return name, size, listing.KindLabel(entry), modified
}

// statusText joins the controller status with the active filter and query.
func statusText(state *view.State) string {
	snap := state.Snapshot
	parts := []string{textutil.Sanitize(snap.Status)}

	filter := snap.Filter.String()
	if preset, ok := state.ActivePreset(); ok {
		filter = preset.Name
	}
	parts = append(parts, "Filter: "+filter)
	if snap.Query != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", textutil.Sanitize(snap.Query)))
	}
	return " " + strings.Join(parts, " | ")
}

func (r *Renderer) drawStatusLine(state *view.State, w, h int) {
	y := h - 2
	if y < 2 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Reverse(true)
	if state.Snapshot.Err != nil {
		style = style.Foreground(r.theme.ErrorFg)
	}
	endX := r.drawTextLine(0, y, w, textutil.Truncate(statusText(state), w), style)
	r.fillRow(endX, w, y, style)
}

func (r *Renderer) drawFooter(state *view.State, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	if state.Mode != view.ModePrompt {
		text := textutil.Truncate(buildFooterHelpText(state), w)
		endX := r.drawTextLine(0, y, w, text, style)
		r.fillRow(endX, w, y, style)
		return
	}

	prompt := state.Prompt
	label := textutil.Sanitize(prompt.Label)
	endX := r.drawTextLine(0, y, w, label, style.Bold(true))

	before := textutil.Sanitize(string(prompt.Input[:prompt.Cursor]))
	cursorX := endX + textutil.DisplayWidth(before)
	// Scroll the input left when the cursor would fall off screen.
	input := textutil.Sanitize(prompt.Text())
	if cursorX >= w {
		keep := w - endX - 1
		before = textutil.TruncateLeft(before, keep)
		input = before
		cursorX = endX + textutil.DisplayWidth(before)
	}
	endX = r.drawTextLine(endX, y, w-endX, input, style)
	r.fillRow(endX, w, y, style)
	r.screen.ShowCursor(cursorX, y)
}

// overlayBox draws a bordered box centred on screen and returns its inner
// origin and size.
func (r *Renderer) overlayBox(title string, w, h, wantW, wantH int) (int, int, int, int) {
	boxW := wantW + 4
	if boxW > w {
		boxW = w
	}
	boxH := wantH + 2
	if boxH > h {
		boxH = h
	}
	left := (w - boxW) / 2
	top := (h - boxH) / 2
	style := tcell.StyleDefault.Background(r.theme.OverlayBg).Foreground(r.theme.OverlayFg)

	for y := top; y < top+boxH; y++ {
		r.fillRow(left, left+boxW, y, style)
	}
	for x := left; x < left+boxW; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, top+boxH-1, tcell.RuneHLine, nil, style)
	}
	for y := top; y < top+boxH; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(left+boxW-1, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(left+boxW-1, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, top+boxH-1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(left+boxW-1, top+boxH-1, tcell.RuneLRCorner, nil, style)

	if title != "" && boxW > 4 {
		r.drawTextLine(left+2, top, boxW-4, textutil.Truncate(" "+title+" ", boxW-4), style.Bold(true))
	}
	return left + 2, top + 1, boxW - 4, boxH - 2
}

func (r *Renderer) drawFavoritesPanel(state *view.State, w, h int) {
	favs := state.Snapshot.Favorites
	lines := make([]string, 0, len(favs))
	widest := len("No favorites yet")
	for _, fav := range favs {
		line := textutil.Sanitize(fav)
		lines = append(lines, line)
		if lw := textutil.DisplayWidth(line); lw > widest {
			widest = lw
		}
	}
	height := len(lines)
	if height == 0 {
		height = 1
	}

	x, y, innerW, innerH := r.overlayBox("Favorites", w, h, widest, height)
	style := tcell.StyleDefault.Background(r.theme.OverlayBg).Foreground(r.theme.OverlayFg)
	if len(lines) == 0 {
		r.drawTextLine(x, y, innerW, textutil.Truncate("No favorites yet", innerW), style)
		return
	}

	offset := 0
	if state.FavoriteIndex >= innerH {
		offset = state.FavoriteIndex - innerH + 1
	}
	for row := 0; row < innerH && offset+row < len(lines); row++ {
		idx := offset + row
		lineStyle := style
		if idx == state.FavoriteIndex {
			lineStyle = lineStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}
		r.drawTextLine(x, y+row, innerW, textutil.PadRight(textutil.TruncateLeft(lines[idx], innerW), innerW), lineStyle)
	}
}

// buildPropertyLines formats the properties overlay body.
func buildPropertyLines(props fsutil.Properties) []string {
	kind := props.Kind()
	if props.IsSymlink {
		kind += " (symlink)"
	}
	size := listing.FormatSize(props.Size)
	if props.IsDir {
		size = "-"
	}
	fields := [][2]string{
		{"Name", props.Name},
		{"Path", props.Path},
		{"Kind", kind},
		{"Size", size},
		{"MIME", props.MIME},
		{"Mode", props.Mode.String()},
		{"Modified", props.Modified.Format("2006-01-02 15:04:05")},
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, textutil.PadRight(f[0]+":", 10)+textutil.Sanitize(f[1]))
	}
	return lines
}

func (r *Renderer) drawPropertiesPanel(props fsutil.Properties, w, h int) {
	lines := buildPropertyLines(props)
	widest := 0
	for _, line := range lines {
		if lw := textutil.DisplayWidth(line); lw > widest {
			widest = lw
		}
	}

	x, y, innerW, innerH := r.overlayBox("Properties", w, h, widest, len(lines))
	style := tcell.StyleDefault.Background(r.theme.OverlayBg).Foreground(r.theme.OverlayFg)
	for row := 0; row < innerH && row < len(lines); row++ {
		r.drawTextLine(x, y+row, innerW, textutil.Truncate(lines[row], innerW), style)
	}
}
