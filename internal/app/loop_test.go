package app

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"

	"github.com/kk-code-lab/fexplorer/internal/explorer"
	"github.com/kk-code-lab/fexplorer/internal/favorites"
	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
	"github.com/kk-code-lab/fexplorer/internal/listing"
	"github.com/kk-code-lab/fexplorer/internal/paths"
	"github.com/kk-code-lab/fexplorer/internal/ui/view"
)

type fakeExplorer struct {
	snap       explorer.Snapshot
	dispatched []explorer.Action
	next       func(explorer.Action) explorer.Snapshot
}

func (f *fakeExplorer) Snapshot() explorer.Snapshot { return f.snap }

func (f *fakeExplorer) Dispatch(action explorer.Action) explorer.Snapshot {
	f.dispatched = append(f.dispatched, action)
	if f.next != nil {
		f.snap = f.next(action)
	}
	return f.snap
}

func homeSnapshot() explorer.Snapshot {
	return explorer.Snapshot{
		CurrentPath: "/home/user",
		Entries: []fsutil.Entry{
			fsutil.ParentEntry("/home"),
			{Name: "docs", FullPath: "/home/user/docs", IsDir: true},
			{Name: "notes.txt", FullPath: "/home/user/notes.txt", Extension: ".txt"},
		},
		Status: "2 items",
		Filter: listing.AllFiles(),
	}
}

func newTestApplication(t *testing.T, ctrl Explorer) *Application {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	app, err := NewApplication(ctrl, Options{Screen: scr})
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	t.Cleanup(scr.Fini)
	return app
}

func drainActions(app *Application) []view.Action {
	var actions []view.Action
	for {
		select {
		case a := <-app.actionCh:
			actions = append(actions, a)
		default:
			return actions
		}
	}
}

func TestNewApplicationRequiresExplorer(t *testing.T) {
	if _, err := NewApplication(nil, Options{Screen: tcell.NewSimulationScreen("")}); err == nil {
		t.Fatal("expected error without explorer")
	}
}

func TestNewApplicationUsesScreenSize(t *testing.T) {
	app := newTestApplication(t, &fakeExplorer{snap: homeSnapshot()})

	w, h := app.screen.Size()
	if app.state.ScreenWidth != w || app.state.ScreenHeight != h {
		t.Fatalf("state size %dx%d, screen %dx%d", app.state.ScreenWidth, app.state.ScreenHeight, w, h)
	}
	if len(app.state.Presets) != len(listing.DefaultPresets()) {
		t.Fatalf("expected default presets, got %d", len(app.state.Presets))
	}
}

func TestHandleActionDispatchesAndAppliesSnapshot(t *testing.T) {
	fake := &fakeExplorer{snap: homeSnapshot()}
	fake.next = func(explorer.Action) explorer.Snapshot {
		return explorer.Snapshot{
			CurrentPath: "/home/user/docs",
			Entries:     []fsutil.Entry{fsutil.ParentEntry("/home/user")},
			Status:      "0 items",
		}
	}
	app := newTestApplication(t, fake)

	app.handleAction(view.MoveDownAction{})
	if len(fake.dispatched) != 0 {
		t.Fatalf("moving the cursor must not reach the explorer, got %#v", fake.dispatched)
	}

	app.handleAction(view.ActivateAction{})
	if len(fake.dispatched) != 1 {
		t.Fatalf("expected one dispatched action, got %#v", fake.dispatched)
	}
	if got, ok := fake.dispatched[0].(explorer.OpenEntryAction); !ok || got.Name != "docs" {
		t.Fatalf("expected OpenEntryAction{docs}, got %#v", fake.dispatched[0])
	}
	if app.state.Snapshot.CurrentPath != "/home/user/docs" {
		t.Fatalf("snapshot not applied, path %q", app.state.Snapshot.CurrentPath)
	}
}

func TestQuitKeyStopsApplication(t *testing.T) {
	app := newTestApplication(t, &fakeExplorer{snap: homeSnapshot()})

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !app.shouldQuit {
		t.Fatal("expected q to stop the application")
	}
}

func TestQuitActionDoesNotRequestRender(t *testing.T) {
	app := newTestApplication(t, &fakeExplorer{snap: homeSnapshot()})

	if app.handleAction(view.QuitAction{}) {
		t.Fatal("quit should not request a render")
	}
	if !app.shouldQuit {
		t.Fatal("expected QuitAction to stop the application")
	}
}

func TestMouseDoubleClickActivatesRow(t *testing.T) {
	app := newTestApplication(t, &fakeExplorer{snap: homeSnapshot()})

	click := tcell.NewEventMouse(5, listStartY+1, tcell.Button1, tcell.ModNone)
	app.handleMouse(click)
	app.handleMouse(click)

	actions := drainActions(app)
	if len(actions) != 3 {
		t.Fatalf("expected select, select, activate; got %#v", actions)
	}
	if sel, ok := actions[0].(view.SelectIndexAction); !ok || sel.Index != 1 {
		t.Fatalf("expected SelectIndexAction{1}, got %#v", actions[0])
	}
	if _, ok := actions[2].(view.ActivateAction); !ok {
		t.Fatalf("expected ActivateAction, got %#v", actions[2])
	}
}

func TestMouseIgnoresClicksOutsideList(t *testing.T) {
	app := newTestApplication(t, &fakeExplorer{snap: homeSnapshot()})

	app.handleMouse(tcell.NewEventMouse(5, 0, tcell.Button1, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(5, listStartY+10, tcell.Button1, tcell.ModNone))

	if actions := drainActions(app); len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
}

func TestMouseWheelMovesSelection(t *testing.T) {
	app := newTestApplication(t, &fakeExplorer{snap: homeSnapshot()})

	app.handleMouse(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))

	actions := drainActions(app)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %#v", actions)
	}
	if _, ok := actions[0].(view.MoveDownAction); !ok {
		t.Fatalf("expected MoveDownAction, got %#v", actions[0])
	}
}

func newMemController(t *testing.T) *explorer.Controller {
	t.Helper()
	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll("/home/user/docs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(mem, "/home/user/notes.txt", []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	fsys := fsutil.New(mem)
	homeDir := func() (string, error) { return "/home/user", nil }
	ctrl, err := explorer.New(explorer.Options{
		FS:        fsys,
		Resolver:  paths.NewResolver(fsys, paths.WithHomeDir(homeDir), paths.WithWorkingDir(homeDir)),
		Lister:    listing.NewLister(fsys),
		Favorites: favorites.NewStore(mem, "/config/favorites.json"),
	})
	if err != nil {
		t.Fatalf("explorer.New: %v", err)
	}
	return ctrl
}

func TestKeysDriveRealController(t *testing.T) {
	app := newTestApplication(t, newMemController(t))

	app.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	app.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	app.processActions()

	if got := app.state.Snapshot.CurrentPath; got != "/home/user/docs" {
		t.Fatalf("expected to enter docs, at %q", got)
	}

	app.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	app.processActions()

	if got := app.state.Snapshot.CurrentPath; got != "/home/user" {
		t.Fatalf("expected to go back up, at %q", got)
	}
	if e := app.state.CurrentEntry(); e == nil || e.Name != "docs" {
		t.Fatalf("expected cursor on docs after going up, got %#v", e)
	}
}

func TestRunExitsOnQuit(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	app, err := NewApplication(&fakeExplorer{snap: homeSnapshot()}, Options{Screen: scr})
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}

	done := make(chan struct{})
	go func() {
		app.Run()
		close(done)
	}()
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestMouseDoesNotBlockOnFullActionQueue(t *testing.T) {
	app := newTestApplication(t, &fakeExplorer{snap: homeSnapshot()})
	for i := 0; i < cap(app.actionCh); i++ {
		app.actionCh <- view.MoveUpAction{}
	}

	done := make(chan struct{})
	go func() {
		app.handleMouse(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handleMouse blocked on a full action queue")
	}

	for i := 0; i < cap(app.actionCh); i++ {
		<-app.actionCh
	}
	select {
	case action := <-app.actionCh:
		if _, ok := action.(view.MoveDownAction); !ok {
			t.Fatalf("expected deferred MoveDownAction, got %#v", action)
		}
	case <-time.After(time.Second):
		t.Fatal("deferred action was never delivered")
	}
}
