package msgbox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput matches errors for text that cannot be passed to the
	// host because it contains a NUL character.
	ErrInvalidInput = errors.New("string contains NUL character")
	// ErrUnexpectedReturn matches errors for return codes that are not a
	// known button.
	ErrUnexpectedReturn = errors.New("unexpected message box return value")
	// ErrFlagConflict matches errors for options combining two members of
	// the same exclusive family.
	ErrFlagConflict = errors.New("conflicting message box flags")
	// ErrHostClosed is returned by hosts that can show only one dialog.
	ErrHostClosed = errors.New("message box host already closed")
)

// InvalidInputError carries the string that could not be converted.
type InvalidInputError struct {
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidInput, strconv.Quote(e.Value))
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnexpectedReturnError carries the raw code returned by the host.
type UnexpectedReturnError struct {
	Code int32
	Msg  string
	// Err is the OS error reported alongside the code, if any.
	Err error
}

func (e *UnexpectedReturnError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %d: %v", e.Msg, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %d", e.Msg, e.Code)
}

func (e *UnexpectedReturnError) Is(target error) bool {
	return target == ErrUnexpectedReturn
}

func (e *UnexpectedReturnError) Unwrap() error {
	return e.Err
}

// FlagConflictError names the exclusive family and the two members that
// were combined. Only strict invokers report it.
type FlagConflictError struct {
	Family string
	Flags  []Flag
}

func (e *FlagConflictError) Error() string {
	names := make([]string, 0, len(e.Flags))
	for _, f := range e.Flags {
		names = append(names, f.String())
	}
	return fmt.Sprintf("%v: %s flags %s", ErrFlagConflict, e.Family, strings.Join(names, " and "))
}

func (e *FlagConflictError) Is(target error) bool {
	return target == ErrFlagConflict
}
