// Package lock guards a file against concurrent writers from other
// processes. Locks are advisory: readers never take them.
package lock

import "github.com/pkg/errors"

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("file already in use by another process")
