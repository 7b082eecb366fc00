// Package view holds the terminal UI's presentation state and turns key-level
// intents into explorer actions.
package view

import (
	"path/filepath"

	"github.com/kk-code-lab/fexplorer/internal/explorer"
	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
	"github.com/kk-code-lab/fexplorer/internal/listing"
)

// ChromeRows is the number of screen rows that are not list rows: title,
// column header, status line and footer.
const ChromeRows = 4

// Mode selects which part of the screen receives keys.
type Mode int

const (
	ModeBrowse Mode = iota
	ModePrompt
	ModeFavorites
	ModeProperties
	ModeHelp
)

// PromptKind identifies what a prompt's input is for.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptPath
	PromptSearch
	PromptRename
	PromptNewFolder
	PromptConfirmDelete
)

// Prompt is the single-line editor shown in the footer.
type Prompt struct {
	Kind   PromptKind
	Label  string
	Input  []rune
	Cursor int
	// Target is the entry the prompt acts on (rename, delete).
	Target string
}

// Text returns the current input.
func (p Prompt) Text() string {
	return string(p.Input)
}

// State is everything the renderer draws.
type State struct {
	Snapshot explorer.Snapshot

	SelectedIndex int
	ScrollOffset  int
	ScreenWidth   int
	ScreenHeight  int

	Mode          Mode
	Prompt        Prompt
	FavoriteIndex int

	Presets     []listing.Preset
	PresetIndex int

	// selectAfterUpdate names the entry to select once the next snapshot lands.
	selectAfterUpdate string
}

// NewState starts in browse mode on snap. presets must not be empty for
// preset cycling to do anything.
func NewState(snap explorer.Snapshot, presets []listing.Preset) *State {
	s := &State{Presets: presets}
	s.Apply(snap)
	return s
}

// Apply installs a fresh snapshot and repairs selection and scroll.
func (s *State) Apply(snap explorer.Snapshot) {
	prevPath := s.Snapshot.CurrentPath
	prevName := ""
	if e := s.CurrentEntry(); e != nil {
		prevName = e.Name
	}
	s.Snapshot = snap

	switch {
	case s.selectAfterUpdate != "":
		if !s.selectByName(s.selectAfterUpdate) && !s.selectByName(prevName) {
			s.clampSelection()
		}
		s.selectAfterUpdate = ""
	case prevPath == "" || prevPath == snap.CurrentPath:
		if !s.selectByName(prevName) {
			s.clampSelection()
		}
	case filepath.Dir(prevPath) == snap.CurrentPath:
		// Coming back up: keep the cursor on the directory we left.
		if !s.selectByName(filepath.Base(prevPath)) {
			s.SelectedIndex = 0
		}
	default:
		s.SelectedIndex = 0
		s.ScrollOffset = 0
	}

	if snap.Properties != nil {
		s.Mode = ModeProperties
	}
	if s.FavoriteIndex >= len(snap.Favorites) {
		s.FavoriteIndex = len(snap.Favorites) - 1
	}
	if s.FavoriteIndex < 0 {
		s.FavoriteIndex = 0
	}
	s.syncPreset()
	s.ensureVisible()
}

// CurrentEntry returns the selected entry or nil for an empty listing.
func (s *State) CurrentEntry() *fsutil.Entry {
	entries := s.Snapshot.Entries
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(entries) {
		return nil
	}
	return &entries[s.SelectedIndex]
}

// CurrentFavorite returns the favorite under the cursor in the favorites panel.
func (s *State) CurrentFavorite() (string, bool) {
	favs := s.Snapshot.Favorites
	if s.FavoriteIndex < 0 || s.FavoriteIndex >= len(favs) {
		return "", false
	}
	return favs[s.FavoriteIndex], true
}

// ActivePreset returns the preset matching the current filter, if any.
func (s *State) ActivePreset() (listing.Preset, bool) {
	if s.PresetIndex < 0 || s.PresetIndex >= len(s.Presets) {
		return listing.Preset{}, false
	}
	p := s.Presets[s.PresetIndex]
	if !p.Filter.Equal(s.Snapshot.Filter) {
		return listing.Preset{}, false
	}
	return p, true
}

// ListRows is how many entries fit on screen.
func (s *State) ListRows() int {
	rows := s.ScreenHeight - ChromeRows
	if rows < 1 {
		return 1
	}
	return rows
}

func (s *State) selectByName(name string) bool {
	if name == "" {
		return false
	}
	for i, e := range s.Snapshot.Entries {
		if e.Name == name {
			s.SelectedIndex = i
			return true
		}
	}
	return false
}

func (s *State) clampSelection() {
	n := len(s.Snapshot.Entries)
	if s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

func (s *State) ensureVisible() {
	rows := s.ListRows()
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ScrollOffset+rows {
		s.ScrollOffset = s.SelectedIndex - rows + 1
	}
	maxOffset := len(s.Snapshot.Entries) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

func (s *State) syncPreset() {
	for i, p := range s.Presets {
		if p.Filter.Equal(s.Snapshot.Filter) {
			s.PresetIndex = i
			return
		}
	}
}
