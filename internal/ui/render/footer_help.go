package render

import (
	"strings"

	"github.com/kk-code-lab/fexplorer/internal/ui/view"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *view.State) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *view.State) []string {
	if state == nil {
		return nil
	}

	switch state.Mode {
	case view.ModeFavorites:
		return []string{
			"↑↓: select",
			"↵: open",
			"d: remove",
			"*: add current",
			"b/Esc: close",
		}
	case view.ModeProperties:
		return []string{"Esc/i: close"}
	case view.ModeHelp:
		return []string{"?/Esc: close help"}
	}

	segments := []string{
		"↑↓/↵/←: navigate",
		"[]: history",
		"~: home",
		":: go to",
		"/: search",
		"Tab: filter",
		"n: new folder",
		"F2: rename",
		"d: delete",
		"b: favorites",
		"?: help",
	}
	if state.Snapshot.Query != "" {
		segments = append([]string{"Esc: clear search"}, segments...)
	}
	return segments
}
