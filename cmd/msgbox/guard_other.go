//go:build !windows && !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package main

type instanceGuard struct{}

// acquireInstance always succeeds where no locking primitive is wired up.
func acquireInstance(string) (*instanceGuard, error) {
	return &instanceGuard{}, nil
}

func (g *instanceGuard) Release() {}
