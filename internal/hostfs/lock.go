package hostfs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// LockFileName is the lock lckpwdf(3) and shadow-utils take before editing
// the account files in the same directory.
const LockFileName = ".pwd.lock"

// lockHostFiles takes a blocking POSIX write lock on dir/.pwd.lock.
// The lock is per process; callers serialise goroutines with muFor.
func lockHostFiles(dir string) (func(), error) {
	p := filepath.Join(dir, LockFileName)
	f, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	lk := unix.Flock_t{Type: unix.F_WRLCK, Whence: 0}
	for {
		err = unix.FcntlFlock(f.Fd(), unix.F_SETLKW, &lk)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("lock %s: %w", p, err)
	}
	return func() {
		lk.Type = unix.F_UNLCK
		_ = unix.FcntlFlock(f.Fd(), unix.F_SETLK, &lk)
		_ = f.Close()
	}, nil
}
