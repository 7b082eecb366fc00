package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// ErrLockTimeout is returned when another process holds the favorites lock for
// longer than lockTimeout.
var ErrLockTimeout = errors.New("timeout acquiring favorites lock")

const (
	lockTimeout      = 2 * time.Second
	lockPollInterval = 10 * time.Millisecond
)

// FileLocker takes an exclusive OS-level lock on path+".lock".
type FileLocker struct{}

func (FileLocker) Lock(path string) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	fileLock := flock.New(path + ".lock")
	locked, err := fileLock.TryLockContext(ctx, lockPollInterval)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrLockTimeout
		}
		return nil, fmt.Errorf("acquire lock for %s: %w", path, err)
	}
	if !locked {
		return nil, ErrLockTimeout
	}
	return func() {
		_ = fileLock.Unlock()
	}, nil
}

type noopLocker struct{}

func (noopLocker) Lock(string) (func(), error) {
	return func() {}, nil
}
