package bundle

import (
	"fmt"

	"github.com/gofrs/flock"
)

// IsLocked reports whether another process holds an exclusive lock on the
// file. The probe tries to acquire the lock without blocking and releases it
// immediately on success; it never keeps the file open. Probe failures other
// than contention are returned to the caller, which excludes the file.
func IsLocked(path string) (bool, error) {
	fl := flock.New(path)
	acquired, err := fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("probing lock on %s: %w", path, err)
	}
	if !acquired {
		return true, nil
	}
	if err := fl.Unlock(); err != nil {
		return false, fmt.Errorf("releasing probe lock on %s: %w", path, err)
	}
	return false, nil
}
