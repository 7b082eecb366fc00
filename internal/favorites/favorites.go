// Package favorites persists the bookmarked directory list as a JSON document.
package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	documentPerm os.FileMode = 0o600
	dirPerm      os.FileMode = 0o755
)

// Locker serializes writers of the favorites document across processes.
type Locker interface {
	Lock(path string) (unlock func(), err error)
}

// Store reads and writes the favorites document.
type Store struct {
	fs     afero.Fs
	path   string
	locker Locker
}

// NewStore keeps the document at path on fs without cross-process locking.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path, locker: noopLocker{}}
}

// NewFileStore keeps the document on the host filesystem, guarded by a
// path+".lock" advisory lock.
func NewFileStore(path string) *Store {
	return &Store{fs: afero.NewOsFs(), path: path, locker: FileLocker{}}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted list. A missing or malformed document yields an
// empty list; duplicates and blank entries are dropped.
func (s *Store) Load() []string {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return []string{}
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return []string{}
	}

	list := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			continue
		}
		list = Add(list, p)
	}
	return list
}

// Save overwrites the document with list.
func (s *Store) Save(list []string) error {
	if list == nil {
		list = []string{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create favorites directory %s: %w", dir, err)
	}

	unlock, err := s.locker.Lock(s.path)
	if err != nil {
		return fmt.Errorf("lock favorites %s: %w", s.path, err)
	}
	defer unlock()

	return writeAtomic(s.fs, s.path, data)
}

// writeAtomic writes to a sibling temp file and renames it over path so
// readers never observe a half-written document.
func writeAtomic(fs afero.Fs, path string, data []byte) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = fs.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write favorites %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync favorites %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close favorites %s: %w", tmpName, err)
	}
	if err := fs.Chmod(tmpName, documentPerm); err != nil {
		cleanup()
		return fmt.Errorf("chmod favorites %s: %w", tmpName, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("replace favorites %s: %w", path, err)
	}
	return nil
}

// Contains reports whether path is in list.
func Contains(list []string, path string) bool {
	return indexOf(list, path) >= 0
}

// Add appends path unless it is already present. list is not modified.
func Add(list []string, path string) []string {
	if Contains(list, path) {
		return list
	}
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, path)
}

// Remove drops the first occurrence of path. list is not modified.
func Remove(list []string, path string) []string {
	idx := indexOf(list, path)
	if idx < 0 {
		return list
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}

func indexOf(list []string, path string) int {
	for i, p := range list {
		if p == path {
			return i
		}
	}
	return -1
}
