package view

// Action is a UI-level intent produced by the input handler.
type Action interface{}

// ===== LIST ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}
type MoveTopAction struct{}
type MoveBottomAction struct{}

// SelectIndexAction selects the entry at Index, e.g. after a mouse click.
type SelectIndexAction struct {
	Index int
}

// ActivateAction opens the selected entry, or the selected favorite while the
// favorites panel has focus.
type ActivateAction struct{}

// ===== NAVIGATION ACTIONS =====

type GoUpAction struct{}
type BackAction struct{}
type ForwardAction struct{}
type HomeAction struct{}
type RefreshAction struct{}

// ===== PROMPT ACTIONS =====

type StartPromptAction struct {
	Kind PromptKind
}
type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptDeleteAction struct{}
type PromptMoveCursorAction struct {
	Direction string // "left", "right", "home", "end"
}
type PromptSubmitAction struct{}
type PromptCancelAction struct{}

// ===== PANEL ACTIONS =====

type CyclePresetAction struct{}
type AddFavoriteAction struct{}
type RemoveFavoriteAction struct{}
type ToggleFavoritesAction struct{}
type PropertiesAction struct{}
type HelpToggleAction struct{}

// DismissAction closes the topmost overlay, or cancels an active search.
type DismissAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}
type QuitAction struct{}

// SuspendAction stops the process and returns the terminal to the shell.
type SuspendAction struct{}
