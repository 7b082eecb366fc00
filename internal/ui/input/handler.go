package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fexplorer/internal/ui/view"
)

// InputHandler converts tcell events to view actions
type InputHandler struct {
	actionChan chan view.Action
	state      *view.State // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan view.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *view.State) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- view.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) mode() view.Mode {
	if ih.state == nil {
		return view.ModeBrowse
	}
	return ih.state.Mode
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- view.QuitAction{}
		return false
	}
	if ev.Key() == tcell.KeyCtrlZ {
		ih.actionChan <- view.SuspendAction{}
		return true
	}

	switch ih.mode() {
	case view.ModePrompt:
		ih.processPromptKey(ev)
		return true
	case view.ModeHelp, view.ModeProperties:
		ih.processOverlayKey(ev)
		return true
	case view.ModeFavorites:
		return ih.processFavoritesKey(ev)
	default:
		return ih.processBrowseKey(ev)
	}
}

func (ih *InputHandler) processOverlayKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		ih.actionChan <- view.DismissAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case '?':
			if ih.mode() == view.ModeHelp {
				ih.actionChan <- view.HelpToggleAction{}
			}
		case 'q', 'Q', 'i':
			ih.actionChan <- view.DismissAction{}
		}
	}
}

func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) {
	confirm := ih.state != nil && ih.state.Prompt.Kind == view.PromptConfirmDelete
	if confirm {
		switch {
		case ev.Key() == tcell.KeyEnter,
			ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
			ih.actionChan <- view.PromptSubmitAction{}
		default:
			ih.actionChan <- view.PromptCancelAction{}
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- view.PromptCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- view.PromptSubmitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- view.PromptBackspaceAction{}
	case tcell.KeyDelete:
		ih.actionChan <- view.PromptDeleteAction{}
	case tcell.KeyLeft:
		ih.actionChan <- view.PromptMoveCursorAction{Direction: "left"}
	case tcell.KeyRight:
		ih.actionChan <- view.PromptMoveCursorAction{Direction: "right"}
	case tcell.KeyHome, tcell.KeyCtrlA:
		ih.actionChan <- view.PromptMoveCursorAction{Direction: "home"}
	case tcell.KeyEnd, tcell.KeyCtrlE:
		ih.actionChan <- view.PromptMoveCursorAction{Direction: "end"}
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModShift != 0 {
			r = unicode.ToUpper(r)
		}
		ih.actionChan <- view.PromptCharAction{Char: r}
	}
}

func (ih *InputHandler) processFavoritesKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- view.DismissAction{}
	case tcell.KeyUp:
		ih.actionChan <- view.MoveUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- view.MoveDownAction{}
	case tcell.KeyEnter, tcell.KeyRight:
		ih.actionChan <- view.ActivateAction{}
	case tcell.KeyDelete:
		ih.actionChan <- view.RemoveFavoriteAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			ih.actionChan <- view.MoveUpAction{}
		case 'j':
			ih.actionChan <- view.MoveDownAction{}
		case 'l':
			ih.actionChan <- view.ActivateAction{}
		case 'd', 'x':
			ih.actionChan <- view.RemoveFavoriteAction{}
		case 'a', '*':
			ih.actionChan <- view.AddFavoriteAction{}
		case 'b':
			ih.actionChan <- view.ToggleFavoritesAction{}
		case '?':
			ih.actionChan <- view.HelpToggleAction{}
		case 'q':
			ih.actionChan <- view.QuitAction{}
			return false
		}
	}
	return true
}

func (ih *InputHandler) processBrowseKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- view.DismissAction{}
	case tcell.KeyUp:
		ih.actionChan <- view.MoveUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- view.MoveDownAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- view.PageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- view.PageDownAction{}
	case tcell.KeyHome:
		ih.actionChan <- view.MoveTopAction{}
	case tcell.KeyEnd:
		ih.actionChan <- view.MoveBottomAction{}
	case tcell.KeyEnter:
		ih.actionChan <- view.ActivateAction{}
	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			ih.actionChan <- view.ForwardAction{}
		} else {
			ih.actionChan <- view.ActivateAction{}
		}
	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			ih.actionChan <- view.BackAction{}
		} else {
			ih.actionChan <- view.GoUpAction{}
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- view.GoUpAction{}
	case tcell.KeyDelete:
		ih.actionChan <- view.StartPromptAction{Kind: view.PromptConfirmDelete}
	case tcell.KeyF2:
		ih.actionChan <- view.StartPromptAction{Kind: view.PromptRename}
	case tcell.KeyF5:
		ih.actionChan <- view.RefreshAction{}
	case tcell.KeyTab:
		ih.actionChan <- view.CyclePresetAction{}
	case tcell.KeyCtrlL:
		ih.actionChan <- view.StartPromptAction{Kind: view.PromptPath}
	case tcell.KeyRune:
		return ih.processBrowseRune(ev)
	}
	return true
}

func (ih *InputHandler) processBrowseRune(ev *tcell.EventKey) bool {
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModShift != 0 {
		// Normalize shifted alphabetic runes to reflect user intent (Shift+r => 'R')
		r = unicode.ToUpper(r)
	}

	switch r {
	case 'q':
		ih.actionChan <- view.QuitAction{}
		return false
	case 'k':
		ih.actionChan <- view.MoveUpAction{}
	case 'j':
		ih.actionChan <- view.MoveDownAction{}
	case 'g':
		ih.actionChan <- view.MoveTopAction{}
	case 'G':
		ih.actionChan <- view.MoveBottomAction{}
	case 'l':
		ih.actionChan <- view.ActivateAction{}
	case 'h':
		ih.actionChan <- view.GoUpAction{}
	case '[':
		ih.actionChan <- view.BackAction{}
	case ']':
		ih.actionChan <- view.ForwardAction{}
	case '~':
		ih.actionChan <- view.HomeAction{}
	case 'r':
		ih.actionChan <- view.RefreshAction{}
	case '/':
		ih.actionChan <- view.StartPromptAction{Kind: view.PromptSearch}
	case ':':
		ih.actionChan <- view.StartPromptAction{Kind: view.PromptPath}
	case 'R':
		ih.actionChan <- view.StartPromptAction{Kind: view.PromptRename}
	case 'n':
		ih.actionChan <- view.StartPromptAction{Kind: view.PromptNewFolder}
	case 'd':
		ih.actionChan <- view.StartPromptAction{Kind: view.PromptConfirmDelete}
	case 'i':
		ih.actionChan <- view.PropertiesAction{}
	case 'f':
		ih.actionChan <- view.CyclePresetAction{}
	case '*':
		ih.actionChan <- view.AddFavoriteAction{}
	case 'b':
		ih.actionChan <- view.ToggleFavoritesAction{}
	case '?':
		ih.actionChan <- view.HelpToggleAction{}
	}
	return true
}
