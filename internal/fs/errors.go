package fs

import (
	"errors"
	iofs "io/fs"
	"syscall"
)

// Error kinds reported by FileSystem operations. Match them with errors.Is.
var (
	ErrInvalidPath   = errors.New("invalid path")
	ErrAccessDenied  = errors.New("access denied")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotEmpty      = errors.New("directory not empty")
)

// OpError records a failed filesystem operation together with its kind.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil || e.Err == e.Kind {
		return e.Op + " " + e.Path + ": " + e.Kind.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Kind.Error() + ": " + causeText(e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func causeText(err error) string {
	var pathErr *iofs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

// Classify maps a raw error onto one of the kinds above. Unknown errors are
// returned untouched.
func Classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	kind := kindOf(err)
	if kind == nil {
		return err
	}
	return &OpError{Op: op, Path: path, Kind: kind, Err: err}
}

func newOpError(op, path string, kind error) error {
	return &OpError{Op: op, Path: path, Kind: kind}
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, iofs.ErrPermission):
		return ErrAccessDenied
	case errors.Is(err, iofs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, iofs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, syscall.ENOTEMPTY):
		return ErrNotEmpty
	case errors.Is(err, iofs.ErrInvalid), errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.ENAMETOOLONG):
		return ErrInvalidPath
	}
	return nil
}
