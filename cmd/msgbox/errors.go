package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"native-messagebox/internal/config"
	"native-messagebox/internal/msgbox"
)

// Exit codes
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // Host failure or unexpected return value
	ExitUsage   = 2 // Bad text, unknown or conflicting flags
	ExitConfig  = 3 // Configuration error
	ExitBusy    = 4 // Another dialog with the same instance name is open
)

var (
	errUsage  = errors.New("usage")
	errConfig = errors.New("configuration")

	errAlreadyShowing = errors.New("a dialog with this instance name is already open")
)

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var verr config.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errAlreadyShowing):
		return ExitBusy
	case errors.As(err, &verr), errors.Is(err, errConfig):
		return ExitConfig
	case errors.Is(err, msgbox.ErrInvalidInput),
		errors.Is(err, msgbox.ErrFlagConflict),
		errors.Is(err, errUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// fail logs err, prints it and returns its exit code.
func fail(stderr io.Writer, log *slog.Logger, err error) int {
	if log != nil {
		log.Error("command failed", "error", err)
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitCode(err)
}
