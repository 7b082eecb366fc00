package view

import (
	"fmt"

	"github.com/kk-code-lab/fexplorer/internal/explorer"
)

// Reducer applies view actions to State. Actions that need the filesystem are
// returned as explorer actions for the caller to dispatch; the resulting
// snapshot goes back in through State.Apply.
type Reducer struct{}

// NewReducer creates a reducer.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce mutates state and returns the explorer action to run, or nil.
func (r *Reducer) Reduce(state *State, action Action) (explorer.Action, error) {
	switch a := action.(type) {
	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.ensureVisible()
		return nil, nil
	case HelpToggleAction:
		if state.Mode == ModeHelp {
			state.Mode = ModeBrowse
		} else {
			state.Mode = ModeHelp
		}
		return nil, nil
	case DismissAction:
		return r.dismiss(state), nil
	}

	switch state.Mode {
	case ModePrompt:
		return r.reducePrompt(state, action)
	case ModeFavorites:
		return r.reduceFavorites(state, action)
	case ModeProperties, ModeHelp:
		// Overlays swallow everything except dismiss and help.
		return nil, nil
	default:
		return r.reduceBrowse(state, action)
	}
}

func (r *Reducer) dismiss(state *State) explorer.Action {
	switch state.Mode {
	case ModePrompt:
		state.Mode = ModeBrowse
		state.Prompt = Prompt{}
	case ModeFavorites, ModeProperties, ModeHelp:
		state.Mode = ModeBrowse
	default:
		if state.Snapshot.Query != "" {
			return explorer.SearchAction{Query: ""}
		}
	}
	return nil
}

func (r *Reducer) reduceBrowse(state *State, action Action) (explorer.Action, error) {
	switch a := action.(type) {
	case MoveUpAction:
		r.moveSelection(state, -1)
	case MoveDownAction:
		r.moveSelection(state, 1)
	case PageUpAction:
		r.moveSelection(state, -state.ListRows())
	case PageDownAction:
		r.moveSelection(state, state.ListRows())
	case MoveTopAction:
		r.moveSelection(state, -len(state.Snapshot.Entries))
	case MoveBottomAction:
		r.moveSelection(state, len(state.Snapshot.Entries))
	case SelectIndexAction:
		r.moveSelection(state, a.Index-state.SelectedIndex)

	case ActivateAction:
		if e := state.CurrentEntry(); e != nil {
			return explorer.OpenEntryAction{Name: e.Name}, nil
		}
	case GoUpAction:
		return explorer.UpAction{}, nil
	case BackAction:
		return explorer.BackAction{}, nil
	case ForwardAction:
		return explorer.ForwardAction{}, nil
	case HomeAction:
		return explorer.HomeAction{}, nil
	case RefreshAction:
		return explorer.RefreshAction{}, nil

	case StartPromptAction:
		r.startPrompt(state, a.Kind)
	case CyclePresetAction:
		if len(state.Presets) == 0 {
			return nil, nil
		}
		next := (state.PresetIndex + 1) % len(state.Presets)
		if _, active := state.ActivePreset(); !active {
			next = 0
		}
		return explorer.SetFilterAction{Filter: state.Presets[next].Filter}, nil
	case AddFavoriteAction:
		return explorer.AddFavoriteAction{}, nil
	case ToggleFavoritesAction:
		state.Mode = ModeFavorites
	case PropertiesAction:
		if e := state.CurrentEntry(); e != nil && !e.IsParent {
			return explorer.PropertiesAction{Name: e.Name}, nil
		}
		return explorer.PropertiesAction{}, nil
	}
	return nil, nil
}

func (r *Reducer) reduceFavorites(state *State, action Action) (explorer.Action, error) {
	n := len(state.Snapshot.Favorites)
	switch action.(type) {
	case MoveUpAction:
		if state.FavoriteIndex > 0 {
			state.FavoriteIndex--
		}
	case MoveDownAction:
		if state.FavoriteIndex < n-1 {
			state.FavoriteIndex++
		}
	case ActivateAction:
		if fav, ok := state.CurrentFavorite(); ok {
			state.Mode = ModeBrowse
			return explorer.OpenFavoriteAction{Path: fav}, nil
		}
	case RemoveFavoriteAction:
		if fav, ok := state.CurrentFavorite(); ok {
			return explorer.RemoveFavoriteAction{Path: fav}, nil
		}
	case AddFavoriteAction:
		return explorer.AddFavoriteAction{}, nil
	case ToggleFavoritesAction:
		state.Mode = ModeBrowse
	}
	return nil, nil
}

func (r *Reducer) moveSelection(state *State, delta int) {
	state.SelectedIndex += delta
	state.clampSelection()
	state.ensureVisible()
}

func (r *Reducer) startPrompt(state *State, kind PromptKind) {
	p := Prompt{Kind: kind}
	entry := state.CurrentEntry()
	named := entry != nil && !entry.IsParent

	switch kind {
	case PromptPath:
		p.Label = "Go to: "
		p.Input = []rune(state.Snapshot.CurrentPath)
	case PromptSearch:
		p.Label = "Search: "
		p.Input = []rune(state.Snapshot.Query)
	case PromptNewFolder:
		p.Label = "New folder: "
	case PromptRename:
		if !named {
			return
		}
		p.Label = "Rename to: "
		p.Target = entry.Name
		p.Input = []rune(entry.Name)
	case PromptConfirmDelete:
		if !named {
			return
		}
		noun := "file"
		if entry.IsDir {
			noun = "folder"
		}
		p.Label = fmt.Sprintf("Delete %s %q? (y/n) ", noun, entry.Name)
		p.Target = entry.Name
	default:
		return
	}

	p.Cursor = len(p.Input)
	state.Prompt = p
	state.Mode = ModePrompt
}

func (r *Reducer) reducePrompt(state *State, action Action) (explorer.Action, error) {
	p := &state.Prompt
	switch a := action.(type) {
	case PromptCharAction:
		p.Input = append(p.Input[:p.Cursor], append([]rune{a.Char}, p.Input[p.Cursor:]...)...)
		p.Cursor++
	case PromptBackspaceAction:
		if p.Cursor > 0 {
			p.Input = append(p.Input[:p.Cursor-1], p.Input[p.Cursor:]...)
			p.Cursor--
		}
	case PromptDeleteAction:
		if p.Cursor < len(p.Input) {
			p.Input = append(p.Input[:p.Cursor], p.Input[p.Cursor+1:]...)
		}
	case PromptMoveCursorAction:
		switch a.Direction {
		case "left":
			if p.Cursor > 0 {
				p.Cursor--
			}
		case "right":
			if p.Cursor < len(p.Input) {
				p.Cursor++
			}
		case "home":
			p.Cursor = 0
		case "end":
			p.Cursor = len(p.Input)
		}
	case PromptCancelAction:
		state.Mode = ModeBrowse
		state.Prompt = Prompt{}
	case PromptSubmitAction:
		return r.submitPrompt(state)
	}
	return nil, nil
}

func (r *Reducer) submitPrompt(state *State) (explorer.Action, error) {
	p := state.Prompt
	state.Mode = ModeBrowse
	state.Prompt = Prompt{}

	text := p.Text()
	switch p.Kind {
	case PromptPath:
		return explorer.NavigateAction{Path: text}, nil
	case PromptSearch:
		return explorer.SearchAction{Query: text}, nil
	case PromptNewFolder:
		state.selectAfterUpdate = text
		return explorer.CreateFolderAction{Name: text}, nil
	case PromptRename:
		state.selectAfterUpdate = text
		return explorer.RenameAction{OldName: p.Target, NewName: text}, nil
	case PromptConfirmDelete:
		return explorer.DeleteAction{Name: p.Target}, nil
	}
	return nil, fmt.Errorf("unknown prompt kind %d", p.Kind)
}
