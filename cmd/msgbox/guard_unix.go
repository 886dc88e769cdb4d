//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

type instanceGuard struct {
	file *os.File
}

// acquireInstance takes an exclusive lock file in the temp directory.
func acquireInstance(name string) (*instanceGuard, error) {
	path := filepath.Join(os.TempDir(), "msgbox-"+lockName(name)+".lock")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if err == unix.EWOULDBLOCK {
			return nil, errAlreadyShowing
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	return &instanceGuard{file: f}, nil
}

func (g *instanceGuard) Release() {
	if g == nil || g.file == nil {
		return
	}
	_ = unix.Flock(int(g.file.Fd()), unix.LOCK_UN)
	g.file.Close()
	g.file = nil
}
