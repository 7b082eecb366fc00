package explorer

import "github.com/kk-code-lab/fexplorer/internal/listing"

// Action is an intent forwarded by the UI.
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateAction struct {
	Path string
}
type BackAction struct{}
type ForwardAction struct{}
type UpAction struct{}
type HomeAction struct{}
type RefreshAction struct{}

// ===== LISTING ACTIONS =====

// SearchAction filters by name substring; an empty Query cancels the search.
type SearchAction struct {
	Query string
}
type SetFilterAction struct {
	Filter listing.FilterSpec
}

// ===== FAVORITES ACTIONS =====

// Favorite actions with an empty Path act on the current directory.
type AddFavoriteAction struct {
	Path string
}
type RemoveFavoriteAction struct {
	Path string
}
type OpenFavoriteAction struct {
	Path string
}

// ===== ENTRY ACTIONS =====
// Names are relative to the current directory.

type RenameAction struct {
	OldName string
	NewName string
}
type DeleteAction struct {
	Name string
}
type CreateFolderAction struct {
	Name string
}
type OpenEntryAction struct {
	Name string
}
type PropertiesAction struct {
	Name string
}
