// Package lockfile serializes pkgset invocations with an advisory flock.
//
// One lock covers the whole configuration root for the duration of one
// workflow: operations like a move span multiple set files and need
// cross-set atomicity, so per-set locks would not be enough. The lock is
// advisory only; nothing stops other programs from editing the files.
package lockfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ErrBusy indicates another pkgset invocation holds the lock.
var ErrBusy = errors.New("another pkgset invocation is running")

// Lock is a held advisory lock.
type Lock struct {
	f *os.File
}

// Acquire takes a non-blocking exclusive flock on path, creating the file
// if needed.
func Acquire(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrBusy
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	return &Lock{f: f}, nil
}

// Release drops the lock. Safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	closeErr := l.f.Close()
	l.f = nil
	if err != nil {
		return fmt.Errorf("failed to unlock: %w", err)
	}
	return closeErr
}
