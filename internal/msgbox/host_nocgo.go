//go:build !windows && !cgo

package msgbox

import "os"

// DefaultHost falls back to a terminal prompt when the binary is built
// without cgo and no GUI toolkit is available.
func DefaultHost() Host {
	return NewConsoleHost(os.Stdin, os.Stdout)
}
