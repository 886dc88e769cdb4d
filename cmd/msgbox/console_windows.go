//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// ATTACH_PARENT_PROCESS
const attachParent = ^uint32(0)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole = kernel32.NewProc("AttachConsole")
	procAllocConsole  = kernel32.NewProc("AllocConsole")
)

// ensureConsole gives a GUI-linked binary somewhere to print to and, for
// --console, read from. The parent's console is preferred over a new one.
func ensureConsole() {
	if validStd(windows.STD_OUTPUT_HANDLE) {
		return
	}
	if r, _, _ := procAttachConsole.Call(uintptr(attachParent)); r == 0 {
		if r, _, _ := procAllocConsole.Call(); r == 0 {
			return
		}
	}
	if f := stdFile(windows.STD_INPUT_HANDLE, "CONIN$"); f != nil {
		os.Stdin = f
	}
	if f := stdFile(windows.STD_OUTPUT_HANDLE, "CONOUT$"); f != nil {
		os.Stdout = f
	}
	if f := stdFile(windows.STD_ERROR_HANDLE, "CONOUT$"); f != nil {
		os.Stderr = f
	}
}

func validStd(which uint32) bool {
	h, err := windows.GetStdHandle(which)
	return err == nil && h != 0 && h != windows.InvalidHandle
}

func stdFile(which uint32, name string) *os.File {
	if !validStd(which) {
		return nil
	}
	h, _ := windows.GetStdHandle(which)
	return os.NewFile(uintptr(h), name)
}
