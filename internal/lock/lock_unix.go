//go:build unix

package lock

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// LockFile attempts to acquire an exclusive, non-blocking advisory lock on
// the file at path.
//
// On Unix systems, this uses flock(2) on the file itself. The lock follows
// the inode, so truncating and rewriting the file keeps it held. If the lock
// cannot be acquired, ErrLocked is returned.
//
// The returned file handle must remain open for the duration of the lock.
func LockFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open file for locking")
	}

	err = unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err != nil {
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, errors.Wrap(ErrLocked, path)
		}
		return nil, errors.Wrapf(err, "flock %s", path)
	}

	return f, nil
}

// UnlockFile releases a lock acquired via LockFile.
//
// On Unix systems, this releases the advisory flock and closes the file.
func UnlockFile(f *os.File) {
	unix.Flock(int(f.Fd()), unix.LOCK_UN)
	f.Close()
}
