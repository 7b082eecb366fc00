// Package explorer orchestrates navigation, listing, favorites and file
// operations, and derives the snapshot the UI renders after every intent.
package explorer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kk-code-lab/fexplorer/internal/favorites"
	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
	"github.com/kk-code-lab/fexplorer/internal/history"
	"github.com/kk-code-lab/fexplorer/internal/listing"
)

// Opener launches the platform's default application for a file.
type Opener interface {
	Open(path string) error
}

// PathResolver canonicalizes user-typed locations.
type PathResolver interface {
	history.Resolver
	Home() (string, error)
}

// DirectoryLister produces the entries of one directory.
type DirectoryLister interface {
	List(dir string, filter listing.FilterSpec, query string) ([]fsutil.Entry, error)
}

// FavoritesStore persists the bookmarked directories.
type FavoritesStore interface {
	Load() []string
	Save(list []string) error
}

// Options wires a Controller. FS, Resolver, Lister and Favorites are required.
type Options struct {
	FS        fsutil.FileSystem
	Resolver  PathResolver
	Lister    DirectoryLister
	Favorites FavoritesStore
	Opener    Opener
	Logger    *zap.Logger
	// StartDir is resolved at startup; empty means the home directory.
	StartDir string
}

// Snapshot is everything the UI needs to render after an intent.
type Snapshot struct {
	CurrentPath string
	Entries     []fsutil.Entry
	Status      string
	Err         error
	Filter      listing.FilterSpec
	Query       string
	Favorites   []string
	CanBack     bool
	CanForward  bool
	// Properties is set only in response to PropertiesAction.
	Properties *fsutil.Properties
}

// Controller owns the navigation state, filter, query and favorites. It is not
// safe for concurrent use; the UI loop calls it from one goroutine.
type Controller struct {
	fs        fsutil.FileSystem
	resolver  PathResolver
	lister    DirectoryLister
	store     FavoritesStore
	opener    Opener
	log       *zap.Logger
	nav       history.State
	filter    listing.FilterSpec
	query     string
	favorites []string
	entries   []fsutil.Entry
	status    string
	err       error
	props     *fsutil.Properties
}

// New loads favorites and lists the start directory. Failing to resolve or
// list the start directory is the only fatal error.
func New(opts Options) (*Controller, error) {
	if opts.FS == nil || opts.Resolver == nil || opts.Lister == nil || opts.Favorites == nil {
		return nil, errors.New("explorer: FS, Resolver, Lister and Favorites are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		fs:       opts.FS,
		resolver: opts.Resolver,
		lister:   opts.Lister,
		store:    opts.Favorites,
		opener:   opts.Opener,
		log:      logger,
		filter:   listing.AllFiles(),
	}

	start := opts.StartDir
	if start == "" {
		home, err := c.resolver.Home()
		if err != nil {
			return nil, fmt.Errorf("determine home directory: %w", err)
		}
		start = home
	}
	current, err := c.resolver.Resolve(start)
	if err != nil {
		return nil, fmt.Errorf("resolve start directory: %w", err)
	}
	entries, err := c.lister.List(current, c.filter, "")
	if err != nil {
		return nil, fmt.Errorf("list start directory: %w", err)
	}

	c.nav = history.New(current)
	c.entries = entries
	c.favorites = c.store.Load()
	c.status = countStatus(entries, "")
	c.log.Info("explorer started",
		zap.String("path", current),
		zap.Int("favorites", len(c.favorites)))
	return c, nil
}

// Snapshot returns the current view without performing an intent.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		CurrentPath: c.nav.Current,
		Entries:     c.entries,
		Status:      c.status,
		Err:         c.err,
		Filter:      c.filter,
		Query:       c.query,
		Favorites:   append([]string(nil), c.favorites...),
		CanBack:     c.nav.CanBack(),
		CanForward:  c.nav.CanForward(),
		Properties:  c.props,
	}
}

// Close flushes favorites.
func (c *Controller) Close() error {
	if err := c.store.Save(c.favorites); err != nil {
		c.log.Warn("flush favorites failed", zap.Error(err))
		return err
	}
	return nil
}

// Dispatch performs action and returns the resulting snapshot. A failing
// action leaves navigation, filter, query and favorites untouched, keeps the
// previous entries and reports the failure through Status and Err.
func (c *Controller) Dispatch(action Action) Snapshot {
	c.log.Debug("dispatch", zap.String("action", fmt.Sprintf("%T", action)))
	c.err = nil
	c.props = nil

	var err error
	switch a := action.(type) {
	case NavigateAction:
		err = c.move(history.Navigate{Target: a.Path})
	case BackAction:
		err = c.move(history.Back{})
	case ForwardAction:
		err = c.move(history.Forward{})
	case UpAction:
		err = c.move(history.Up{})
	case HomeAction:
		err = c.goHome()
	case RefreshAction:
		err = c.relist(c.filter, c.query)
	case SearchAction:
		err = c.relist(c.filter, a.Query)
	case SetFilterAction:
		err = c.relist(a.Filter, c.query)
	case AddFavoriteAction:
		err = c.addFavorite(a.Path)
	case RemoveFavoriteAction:
		err = c.removeFavorite(a.Path)
	case OpenFavoriteAction:
		err = c.openFavorite(a.Path)
	case RenameAction:
		err = c.rename(a.OldName, a.NewName)
	case DeleteAction:
		err = c.delete(a.Name)
	case CreateFolderAction:
		err = c.createFolder(a.Name)
	case OpenEntryAction:
		err = c.openEntry(a.Name)
	case PropertiesAction:
		err = c.properties(a.Name)
	default:
		err = fmt.Errorf("unsupported action %T", action)
	}

	if err != nil {
		c.err = err
		c.status = errorStatus(err)
		c.log.Warn("action failed",
			zap.String("action", fmt.Sprintf("%T", action)),
			zap.String("path", c.nav.Current),
			zap.Error(err))
	}
	return c.Snapshot()
}

// move applies a history intent and commits it only if the destination lists.
func (c *Controller) move(intent history.Intent) error {
	next, err := history.Apply(c.nav, intent, c.resolver)
	if err != nil {
		return err
	}

	query := c.query
	if next.Current != c.nav.Current {
		query = ""
	}
	entries, err := c.lister.List(next.Current, c.filter, query)
	if err != nil {
		return err
	}

	if !next.Equal(c.nav) {
		c.log.Debug("navigated",
			zap.String("from", c.nav.Current),
			zap.String("to", next.Current),
			zap.Int("back", len(next.Back)),
			zap.Int("forward", len(next.Forward)))
	}
	c.nav = next
	c.query = query
	c.entries = entries
	c.status = countStatus(entries, query)
	return nil
}

func (c *Controller) goHome() error {
	home, err := c.resolver.Home()
	if err != nil {
		return err
	}
	return c.move(history.Navigate{Target: home})
}

// relist re-reads the current directory with filter and query, committing
// both only on success.
func (c *Controller) relist(filter listing.FilterSpec, query string) error {
	entries, err := c.lister.List(c.nav.Current, filter, query)
	if err != nil {
		return err
	}
	c.filter = filter
	c.query = query
	c.entries = entries
	c.status = countStatus(entries, query)
	return nil
}

// ===== FAVORITES =====

func (c *Controller) favoriteTarget(path string) (string, error) {
	if path == "" {
		return c.nav.Current, nil
	}
	return c.resolver.Resolve(path)
}

func (c *Controller) addFavorite(path string) error {
	target, err := c.favoriteTarget(path)
	if err != nil {
		return err
	}
	if favorites.Contains(c.favorites, target) {
		c.status = "Already in favorites: " + target
		return nil
	}
	if err := c.saveFavorites(favorites.Add(c.favorites, target)); err != nil {
		return err
	}
	c.log.Info("favorite added", zap.String("path", target))
	c.status = "Added to favorites: " + target
	return nil
}

func (c *Controller) removeFavorite(path string) error {
	if path == "" {
		path = c.nav.Current
	}
	path = filepath.Clean(path)
	if !favorites.Contains(c.favorites, path) {
		c.status = "Not in favorites: " + path
		return nil
	}
	if err := c.saveFavorites(favorites.Remove(c.favorites, path)); err != nil {
		return err
	}
	c.log.Info("favorite removed", zap.String("path", path))
	c.status = "Removed from favorites: " + path
	return nil
}

// openFavorite navigates to path. A favorite that no longer resolves is
// dropped from the list.
func (c *Controller) openFavorite(path string) error {
	err := c.move(history.Navigate{Target: path})
	path = filepath.Clean(path)
	if err == nil || !errors.Is(err, fsutil.ErrInvalidPath) || !favorites.Contains(c.favorites, path) {
		return err
	}

	if saveErr := c.saveFavorites(favorites.Remove(c.favorites, path)); saveErr != nil {
		return errors.Join(err, saveErr)
	}
	c.log.Info("stale favorite removed", zap.String("path", path))
	c.status = "Favorite no longer exists, removed: " + path
	c.err = err
	return nil
}

// saveFavorites persists list and adopts it only once it is written.
func (c *Controller) saveFavorites(list []string) error {
	if err := c.store.Save(list); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	c.favorites = list
	return nil
}

// ===== ENTRY OPERATIONS =====

// childPath joins name onto the current directory. Names that would escape it
// are rejected.
func (c *Controller) childPath(op, name string) (string, error) {
	if name == "" || name == "." || name == fsutil.ParentName ||
		strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return "", &fsutil.OpError{Op: op, Path: name, Kind: fsutil.ErrInvalidPath}
	}
	return filepath.Join(c.nav.Current, name), nil
}

func (c *Controller) rename(oldName, newName string) error {
	if newName == "" || newName == oldName {
		return c.relist(c.filter, c.query)
	}
	oldPath, err := c.childPath("rename", oldName)
	if err != nil {
		return err
	}
	newPath, err := c.childPath("rename", newName)
	if err != nil {
		return err
	}
	if err := c.fs.Rename(oldPath, newPath); err != nil {
		return err
	}
	c.log.Info("renamed", zap.String("path", oldPath), zap.String("name", newName))
	return c.afterMutation("Renamed " + oldName + " to " + newName)
}

// delete removes a file or an empty directory.
func (c *Controller) delete(name string) error {
	target, err := c.childPath("delete", name)
	if err != nil {
		return err
	}
	if err := c.fs.Remove(target); err != nil {
		return err
	}
	c.log.Info("deleted", zap.String("path", target))
	return c.afterMutation("Deleted " + name)
}

func (c *Controller) createFolder(name string) error {
	target, err := c.childPath("mkdir", name)
	if err != nil {
		return err
	}
	if err := c.fs.Mkdir(target); err != nil {
		return err
	}
	c.log.Info("folder created", zap.String("path", target))
	return c.afterMutation("Created folder " + name)
}

// afterMutation re-reads the listing following a successful file operation.
func (c *Controller) afterMutation(status string) error {
	if err := c.relist(c.filter, c.query); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Controller) openEntry(name string) error {
	if name == fsutil.ParentName {
		return c.move(history.Up{})
	}
	target, err := c.childPath("open", name)
	if err != nil {
		return err
	}
	info, err := c.fs.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return c.move(history.Navigate{Target: target})
	}

	if c.opener == nil {
		return &OpenError{Path: target, Err: errors.New("no default application available")}
	}
	if err := c.opener.Open(target); err != nil {
		return &OpenError{Path: target, Err: err}
	}
	c.log.Info("opened", zap.String("path", target))
	c.status = "Opened " + name
	return nil
}

func (c *Controller) properties(name string) error {
	target := c.nav.Current
	if name != "" {
		var err error
		if target, err = c.childPath("properties", name); err != nil {
			return err
		}
	}
	props, err := fsutil.ReadProperties(c.fs, target)
	if err != nil {
		return err
	}
	c.props = &props
	c.status = "Properties: " + props.Name
	return nil
}
