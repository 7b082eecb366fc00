// Package listing projects directory contents into ordered entry lists.
package listing

import (
	"os"
	"path/filepath"
	"sort"

	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
)

// Lister enumerates directories through a FileSystem. It keeps no state
// between calls; every List re-reads the directory.
type Lister struct {
	fs         fsutil.FileSystem
	showHidden bool
}

// Option customizes a Lister.
type Option func(*Lister)

// WithHidden controls whether hidden entries are listed (default true).
func WithHidden(show bool) Option {
	return func(l *Lister) { l.showHidden = show }
}

// NewLister builds a Lister over fs.
func NewLister(fs fsutil.FileSystem, opts ...Option) *Lister {
	l := &Lister{fs: fs, showHidden: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns the direct children of dir, sorted by raw name, preceded by a
// ".." entry unless dir is the filesystem root. Files failing filter and
// entries not matching a non-empty query are dropped; ".." always stays.
func (l *Lister) List(dir string, filter FilterSpec, query string) ([]fsutil.Entry, error) {
	dir = filepath.Clean(dir)
	infos, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	m := newMatcher(query)
	entries := make([]fsutil.Entry, 0, len(infos)+1)
	for _, info := range infos {
		name := info.Name()
		fullPath := filepath.Join(dir, name)
		if fsutil.ShouldHideFromListing(fullPath, name) {
			continue
		}

		entry := l.describe(fullPath, info)
		if !l.showHidden && entry.IsHidden() {
			continue
		}
		if !entry.IsDir && !filter.Allows(entry.Extension) {
			continue
		}
		if !m.Match(name) {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	if parent := filepath.Dir(dir); parent != dir {
		entries = append([]fsutil.Entry{fsutil.ParentEntry(parent)}, entries...)
	}
	return entries, nil
}

func (l *Lister) describe(fullPath string, info os.FileInfo) fsutil.Entry {
	isDir := info.IsDir()
	isSymlink := info.Mode()&os.ModeSymlink != 0
	size := info.Size()
	modified := info.ModTime()

	// Symlinks are classified by their target; dangling links stay files.
	if isSymlink {
		if target, err := l.fs.Stat(fullPath); err == nil {
			isDir = target.IsDir()
			size = target.Size()
			modified = target.ModTime()
		}
	}

	entry := fsutil.Entry{
		Name:      info.Name(),
		FullPath:  fullPath,
		IsDir:     isDir,
		IsSymlink: isSymlink,
		Modified:  modified,
		Mode:      info.Mode(),
	}
	if !isDir {
		entry.Size = size
		entry.Extension = fsutil.Extension(entry.Name)
	}
	return entry
}
