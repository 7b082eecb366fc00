package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSystem is the capability the explorer needs from storage. Every method
// may block; nothing is cached between calls.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
	Mkdir(path string) error
}

const dirPerm os.FileMode = 0o755

// AferoFS adapts an afero.Fs to FileSystem and classifies its errors.
type AferoFS struct {
	fs afero.Fs
}

// New wraps fs.
func New(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// NewOS returns a FileSystem backed by the host operating system.
func NewOS() *AferoFS {
	return New(afero.NewOsFs())
}

// NewMem returns an empty in-memory FileSystem.
func NewMem() *AferoFS {
	return New(afero.NewMemMapFs())
}

// Afero exposes the wrapped afero.Fs.
func (a *AferoFS) Afero() afero.Fs {
	return a.fs
}

func (a *AferoFS) Stat(path string) (os.FileInfo, error) {
	info, err := a.fs.Stat(path)
	return info, Classify("stat", path, err)
}

func (a *AferoFS) Lstat(path string) (os.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, Classify("lstat", path, err)
	}
	return a.Stat(path)
}

// ReadDir returns the direct children of path. Entries keep link metadata so
// callers can tell symlinks apart; use Stat to follow them.
func (a *AferoFS) ReadDir(path string) ([]os.FileInfo, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, Classify("readdir", path, err)
	}
	if !info.IsDir() {
		return nil, newOpError("readdir", path, ErrInvalidPath)
	}
	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, Classify("readdir", path, err)
	}
	return entries, nil
}

func (a *AferoFS) Open(path string) (io.ReadCloser, error) {
	f, err := a.fs.Open(path)
	if err != nil {
		return nil, Classify("open", path, err)
	}
	return f, nil
}

// Rename refuses to replace an existing entry; os.Rename would silently
// overwrite files on Unix.
func (a *AferoFS) Rename(oldPath, newPath string) error {
	oldInfo, err := a.Lstat(oldPath)
	if err != nil {
		return Classify("rename", oldPath, err)
	}
	// A case-only rename on a case-insensitive volume sees the source as the target.
	if newInfo, err := a.Lstat(newPath); err == nil && !os.SameFile(oldInfo, newInfo) {
		return newOpError("rename", newPath, ErrAlreadyExists)
	}
	return Classify("rename", oldPath, a.fs.Rename(oldPath, newPath))
}

// Remove deletes a file or an empty directory.
func (a *AferoFS) Remove(path string) error {
	info, err := a.Lstat(path)
	if err != nil {
		return Classify("remove", path, err)
	}
	if info.IsDir() {
		children, err := afero.ReadDir(a.fs, path)
		if err != nil {
			return Classify("remove", path, err)
		}
		if len(children) > 0 {
			return newOpError("remove", path, ErrNotEmpty)
		}
	}
	return Classify("remove", path, a.fs.Remove(path))
}

// Mkdir creates a single directory; the parent must exist.
func (a *AferoFS) Mkdir(path string) error {
	parent := filepath.Dir(path)
	if info, err := a.fs.Stat(parent); err != nil {
		return Classify("mkdir", parent, err)
	} else if !info.IsDir() {
		return newOpError("mkdir", parent, ErrInvalidPath)
	}
	return Classify("mkdir", path, a.fs.Mkdir(path, dirPerm))
}
