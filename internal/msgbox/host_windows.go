//go:build windows

package msgbox

import (
	"golang.org/x/sys/windows"
)

// NativeHost calls MessageBoxW from user32.dll.
type NativeHost struct{}

// MessageBox calls MessageBoxW with the given owner window. A zero return
// is passed on together with the thread's last error.
func (NativeHost) MessageBox(owner uintptr, text, title []uint16, style uint32) (int32, error) {
	if len(text) == 0 || len(title) == 0 {
		return 0, windows.ERROR_INVALID_PARAMETER
	}
	ret, err := windows.MessageBox(windows.HWND(owner), &text[0], &title[0], style)
	if ret == 0 {
		return 0, err
	}
	return ret, nil
}

// DefaultHost returns the native Windows message box.
func DefaultHost() Host {
	return NativeHost{}
}
