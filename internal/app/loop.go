package app

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fexplorer/internal/ui/view"
	"go.uber.org/zap"
)

const doubleClickThreshold = 300 * time.Millisecond

// listStartY is the first screen row holding a list entry.
const listStartY = 2

// Run renders and processes events until the user quits. The screen is
// finalised on return.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventMouse:
		app.handleMouse(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// handleMouse maps clicks on list rows to selection and double clicks to
// activation. The wheel scrolls the selection.
// dispatch queues action without blocking the loop that drains actionCh.
func (app *Application) dispatch(action view.Action) {
	select {
	case app.actionCh <- action:
	default:
		go func() { app.actionCh <- action }()
	}
}

func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state.Mode != view.ModeBrowse {
		return
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		app.dispatch(view.MoveUpAction{})
		return
	case buttons&tcell.WheelDown != 0:
		app.dispatch(view.MoveDownAction{})
		return
	case buttons&tcell.Button1 == 0:
		return
	}

	_, y := ev.Position()
	row := y - listStartY
	if row < 0 || row >= app.state.ListRows() {
		return
	}
	idx := app.state.ScrollOffset + row
	if idx >= len(app.state.Snapshot.Entries) {
		return
	}

	now := time.Now()
	doubleClick := app.lastClickRow == idx && now.Sub(app.lastClickTime) <= doubleClickThreshold
	app.lastClickRow = idx
	app.lastClickTime = now

	app.dispatch(view.SelectIndexAction{Index: idx})
	if doubleClick {
		app.lastClickRow = -1
		app.dispatch(view.ActivateAction{})
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

// handleAction runs one view action. Actions that touch the filesystem go
// through the explorer and the resulting snapshot is applied to the view.
func (app *Application) handleAction(action view.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case view.QuitAction:
		app.shouldQuit = true
		return false
	case view.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	next, err := app.reducer.Reduce(app.state, action)
	if err != nil {
		app.log.Warn("view action failed", zap.String("action", fmt.Sprintf("%T", action)), zap.Error(err))
		return true
	}
	if next != nil {
		app.state.Apply(app.ctrl.Dispatch(next))
	}
	return true
}
