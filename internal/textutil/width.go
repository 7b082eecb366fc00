package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// DisplayWidth reports how many terminal cells text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width cells, ending it with an ellipsis
// when something was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, Ellipsis)
}

// TruncateLeft keeps the end of text, which is the informative part of a long
// path.
func TruncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(Ellipsis) {
		return Ellipsis
	}

	budget := width - runewidth.StringWidth(Ellipsis)
	runes := []rune(text)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > budget {
			break
		}
		used += w
		start--
	}
	return Ellipsis + string(runes[start:])
}

// PadRight truncates or pads text with spaces to exactly width cells.
func PadRight(text string, width int) string {
	text = Truncate(text, width)
	if gap := width - runewidth.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

// PadLeft right-aligns text in width cells.
func PadLeft(text string, width int) string {
	text = Truncate(text, width)
	if gap := width - runewidth.StringWidth(text); gap > 0 {
		return strings.Repeat(" ", gap) + text
	}
	return text
}
