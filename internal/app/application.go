package app

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fexplorer/internal/explorer"
	"github.com/kk-code-lab/fexplorer/internal/listing"
	inputui "github.com/kk-code-lab/fexplorer/internal/ui/input"
	renderui "github.com/kk-code-lab/fexplorer/internal/ui/render"
	"github.com/kk-code-lab/fexplorer/internal/ui/view"
	"go.uber.org/zap"
)

// Explorer is the part of the controller the UI loop drives.
type Explorer interface {
	Dispatch(action explorer.Action) explorer.Snapshot
	Snapshot() explorer.Snapshot
}

// Options configures NewApplication. Screen defaults to the real terminal.
type Options struct {
	Screen  tcell.Screen
	Presets []listing.Preset
	Logger  *zap.Logger
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	ctrl       Explorer
	state      *view.State
	reducer    *view.Reducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan view.Action
	log        *zap.Logger
	shouldQuit bool

	lastClickRow  int
	lastClickTime time.Time
}

// NewApplication initialises the screen and builds the UI around ctrl.
func NewApplication(ctrl Explorer, opts Options) (*Application, error) {
	if ctrl == nil {
		return nil, errors.New("app: explorer is required")
	}

	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	presets := opts.Presets
	if len(presets) == 0 {
		presets = listing.DefaultPresets()
	}

	state := view.NewState(ctrl.Snapshot(), presets)
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	actionCh := make(chan view.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	return &Application{
		screen:       screen,
		ctrl:         ctrl,
		state:        state,
		reducer:      view.NewReducer(),
		renderer:     renderui.NewRenderer(screen),
		input:        inputHandler,
		actionCh:     actionCh,
		log:          logger,
		lastClickRow: -1,
	}, nil
}

// State exposes the view state, mainly for tests.
func (app *Application) State() *view.State {
	return app.state
}
