//go:build windows

package lock

import (
	"os"

	"github.com/pkg/errors"
)

// LockFile attempts to acquire an exclusive lock on the file at path.
//
// On Windows, this is implemented by atomically creating a sidecar file
// named "<path>.lock". If it already exists, the file is assumed to be
// being written by another process.
//
// The returned file handle must be kept open for the duration of the lock.
func LockFile(path string) (*os.File, error) {
	sidecar := path + ".lock"
	f, err := os.OpenFile(sidecar, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		if os.IsExist(err) {
			// A writer that crashed leaves the sidecar behind.
			return nil, errors.Wrapf(ErrLocked, "%s (if no other process is writing it, delete the stale lock file %s)", path, sidecar)
		}
		return nil, errors.Wrap(err, "unable to create lock file")
	}

	return f, nil
}

// UnlockFile releases a lock acquired via LockFile.
//
// On Windows, this removes the sidecar lock file. UnlockFile should be
// called exactly once for each successful LockFile call.
func UnlockFile(f *os.File) {
	name := f.Name()
	f.Close()
	os.Remove(name)
}
