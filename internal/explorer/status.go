package explorer

import (
	"errors"
	"fmt"

	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
	"github.com/kk-code-lab/fexplorer/internal/history"
)

// OpenError reports a failure of the default-application opener.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return "open " + e.Path + ": " + e.Err.Error()
}

func (e *OpenError) Unwrap() error { return e.Err }

func countStatus(entries []fsutil.Entry, query string) string {
	if query != "" {
		return "Results for: " + query
	}
	n := 0
	for _, e := range entries {
		if !e.IsParent {
			n++
		}
	}
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// errorStatus renders err for the status line.
func errorStatus(err error) string {
	var opErr *fsutil.OpError
	var openErr *OpenError
	withPath := func(msg string) string {
		if errors.As(err, &opErr) && opErr.Path != "" {
			return msg + ": " + opErr.Path
		}
		return msg
	}

	switch {
	case errors.Is(err, history.ErrNoHistory):
		return "Beginning of history reached"
	case errors.Is(err, history.ErrNoFuture):
		return "No forward history available"
	case errors.As(err, &openErr):
		return "Cannot open: " + openErr.Path + ": " + openErr.Err.Error()
	case errors.Is(err, fsutil.ErrInvalidPath):
		return withPath("Invalid path")
	case errors.Is(err, fsutil.ErrAccessDenied):
		return withPath("Access denied")
	case errors.Is(err, fsutil.ErrNotFound):
		return withPath("Not found")
	case errors.Is(err, fsutil.ErrAlreadyExists):
		return withPath("Already exists")
	case errors.Is(err, fsutil.ErrNotEmpty):
		return withPath("Directory not empty")
	default:
		return "Error: " + err.Error()
	}
}
