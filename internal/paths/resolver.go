// Package paths turns user-typed locations into canonical absolute paths.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
)

// Resolver normalizes and validates paths against a FileSystem.
type Resolver struct {
	fs      fsutil.FileSystem
	homeDir func() (string, error)
	getwd   func() (string, error)
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithHomeDir overrides home directory lookup.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Resolver) { r.homeDir = fn }
}

// WithWorkingDir overrides the base used for relative paths.
func WithWorkingDir(fn func() (string, error)) Option {
	return func(r *Resolver) { r.getwd = fn }
}

// NewResolver builds a Resolver that validates existence through fs.
func NewResolver(fs fsutil.FileSystem, opts ...Option) *Resolver {
	r := &Resolver{
		fs:      fs,
		homeDir: os.UserHomeDir,
		getwd:   os.Getwd,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Home returns the canonical home directory.
func (r *Resolver) Home() (string, error) {
	home, err := r.homeDir()
	if err != nil {
		return "", err
	}
	if home == "" {
		return "", &fsutil.OpError{Op: "home", Kind: fsutil.ErrInvalidPath}
	}
	return filepath.Clean(home), nil
}

// Resolve expands "~", makes raw absolute and checks that it exists.
func (r *Resolver) Resolve(raw string) (string, error) {
	p, err := r.Normalize(raw)
	if err != nil {
		return "", err
	}
	if _, err := r.fs.Stat(p); err != nil {
		return "", &fsutil.OpError{Op: "resolve", Path: p, Kind: fsutil.ErrInvalidPath, Err: err}
	}
	return p, nil
}

// Normalize is Resolve without the existence check.
func (r *Resolver) Normalize(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if p == "" {
		return "", &fsutil.OpError{Op: "resolve", Path: raw, Kind: fsutil.ErrInvalidPath}
	}

	expanded, err := r.expandHome(p)
	if err != nil {
		return "", &fsutil.OpError{Op: "resolve", Path: raw, Kind: fsutil.ErrInvalidPath, Err: err}
	}

	if !filepath.IsAbs(expanded) {
		wd, err := r.getwd()
		if err != nil {
			return "", &fsutil.OpError{Op: "resolve", Path: raw, Kind: fsutil.ErrInvalidPath, Err: err}
		}
		expanded = filepath.Join(wd, expanded)
	}
	return filepath.Clean(expanded), nil
}

// Parent returns the parent directory of p; the root is its own parent.
func (r *Resolver) Parent(p string) string {
	return filepath.Dir(filepath.Clean(p))
}

// IsRoot reports whether p has no parent.
func (r *Resolver) IsRoot(p string) bool {
	return r.Parent(p) == filepath.Clean(p)
}

// expandHome handles "~" and "~/..." (or "~\..." on Windows). "~user" is left
// untouched.
func (r *Resolver) expandHome(p string) (string, error) {
	if p[0] != '~' {
		return p, nil
	}
	if len(p) > 1 && p[1] != '/' && p[1] != filepath.Separator {
		return p, nil
	}

	home, err := r.Home()
	if err != nil {
		return "", err
	}
	if len(p) == 1 {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}
