//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// instanceGuard holds a named mutex for as long as the dialog is open.
type instanceGuard struct {
	handle windows.Handle
}

// acquireInstance creates the named mutex. When another msgbox already
// holds it, errAlreadyShowing is returned.
func acquireInstance(name string) (*instanceGuard, error) {
	ptr, err := windows.UTF16PtrFromString("Local\\msgbox-" + lockName(name))
	if err != nil {
		return nil, fmt.Errorf("%w: instance name: %w", errUsage, err)
	}
	handle, err := windows.CreateMutex(nil, true, ptr)
	if err != nil {
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			if handle != 0 {
				windows.CloseHandle(handle)
			}
			return nil, errAlreadyShowing
		}
		return nil, fmt.Errorf("create mutex: %w", err)
	}
	return &instanceGuard{handle: handle}, nil
}

// Release frees the underlying mutex handle.
func (g *instanceGuard) Release() {
	if g == nil || g.handle == 0 {
		return
	}
	windows.ReleaseMutex(g.handle)
	windows.CloseHandle(g.handle)
	g.handle = 0
}
