package msgbox

import (
	"fmt"
	"sort"
	"strings"
)

// Flag is a single MB_* style bit (or bit group) passed to the message box.
type Flag uint32

// Button sets. Only one may be used per dialog.
const (
	OK                Flag = 0x00000000
	OKCancel          Flag = 0x00000001
	AbortRetryIgnore  Flag = 0x00000002
	YesNoCancel       Flag = 0x00000003
	YesNo             Flag = 0x00000004
	RetryCancel       Flag = 0x00000005
	CancelTryContinue Flag = 0x00000006
)

// Icons.
const (
	IconError       Flag = 0x00000010
	IconQuestion    Flag = 0x00000020
	IconExclamation Flag = 0x00000030
	IconInformation Flag = 0x00000040
)

// Default button index.
const (
	DefButton1 Flag = 0x00000000
	DefButton2 Flag = 0x00000100
	DefButton3 Flag = 0x00000200
	DefButton4 Flag = 0x00000300
)

// Modality.
const (
	ApplicationModal Flag = 0x00000000
	SystemModal      Flag = 0x00001000
	TaskModal        Flag = 0x00002000
)

// Independent modifiers.
const (
	Help                Flag = 0x00004000
	SetForeground       Flag = 0x00010000
	DefaultDesktopOnly  Flag = 0x00020000
	Topmost             Flag = 0x00040000
	TextRTL             Flag = 0x00080000
	RTLReading          Flag = 0x00100000
	ServiceNotification Flag = 0x00200000
)

// Family groups the flags whose values share a bit range and therefore
// cannot be combined.
type Family struct {
	Name string
	Mask uint32
}

// Exclusive families and the bits each one occupies.
var (
	// FamilyButtons selects the button set (OK, YES_NO, ...).
	FamilyButtons = Family{Name: "buttons", Mask: 0x0000000F}
	// FamilyIcon selects the icon.
	FamilyIcon = Family{Name: "icon", Mask: 0x000000F0}
	// FamilyDefault selects the preselected button.
	FamilyDefault = Family{Name: "default button", Mask: 0x00000F00}
	// FamilyModality selects application, system or task modality.
	FamilyModality = Family{Name: "modality", Mask: 0x00003000}
)

var exclusiveFamilies = []Family{FamilyButtons, FamilyIcon, FamilyDefault, FamilyModality}

var flagNames = map[string]Flag{
	"OK":                   OK,
	"OK_CANCEL":            OKCancel,
	"ABORT_RETRY_IGNORE":   AbortRetryIgnore,
	"YES_NO_CANCEL":        YesNoCancel,
	"YES_NO":               YesNo,
	"RETRY_CANCEL":         RetryCancel,
	"CANCEL_TRY_CONTINUE":  CancelTryContinue,
	"ICON_ERROR":           IconError,
	"ICON_QUESTION":        IconQuestion,
	"ICON_EXCLAMATION":     IconExclamation,
	"ICON_INFORMATION":     IconInformation,
	"DEF_BUTTON1":          DefButton1,
	"DEF_BUTTON2":          DefButton2,
	"DEF_BUTTON3":          DefButton3,
	"DEF_BUTTON4":          DefButton4,
	"APPLICATION_MODAL":    ApplicationModal,
	"SYSTEM_MODAL":         SystemModal,
	"TASK_MODAL":           TaskModal,
	"HELP":                 Help,
	"SET_FOREGROUND":       SetForeground,
	"DEFAULT_DESKTOP_ONLY": DefaultDesktopOnly,
	"TOPMOST":              Topmost,
	"TEXT_RTL":             TextRTL,
	"RTL_READING":          RTLReading,
	"SERVICE_NOTIFICATION": ServiceNotification,
}

// Common aliases accepted by ParseFlag. Win32 calls these ICONHAND,
// ICONWARNING and ICONASTERISK.
var flagAliases = map[string]Flag{
	"ICON_HAND":     IconError,
	"ICON_STOP":     IconError,
	"ICON_WARNING":  IconExclamation,
	"ICON_ASTERISK": IconInformation,
	"RIGHT":         TextRTL,
}

// ParseFlag resolves a flag by name. Names are matched case-insensitively,
// an optional MB_ prefix is ignored and '-' is treated as '_'.
func ParseFlag(name string) (Flag, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "MB_")
	key = strings.ReplaceAll(key, "-", "_")
	if f, ok := flagNames[key]; ok {
		return f, nil
	}
	if f, ok := flagAliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown message box flag %q", name)
}

// ParseFlags resolves every name, stopping at the first unknown one.
func ParseFlags(names []string) ([]Flag, error) {
	flags := make([]Flag, 0, len(names))
	for _, name := range names {
		f, err := ParseFlag(name)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}
	return flags, nil
}

// FlagNames lists every canonical flag name in sorted order.
func FlagNames() []string {
	names := make([]string, 0, len(flagNames))
	for name := range flagNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the canonical name. Values that share a zero encoding
// (OK, DEF_BUTTON1, APPLICATION_MODAL) all render as "OK".
func (f Flag) String() string {
	switch f {
	case OK:
		return "OK"
	case DefButton2:
		return "DEF_BUTTON2"
	case DefButton3:
		return "DEF_BUTTON3"
	case DefButton4:
		return "DEF_BUTTON4"
	}
	for name, v := range flagNames {
		if v == f && v != 0 {
			return name
		}
	}
	return fmt.Sprintf("Flag(0x%X)", uint32(f))
}

// Fold combines flags with bitwise OR, starting from zero.
func Fold(flags ...Flag) uint32 {
	var style uint32
	for _, f := range flags {
		style |= uint32(f)
	}
	return style
}

// CheckExclusive reports the first exclusive family for which two different
// non-zero members were supplied. Duplicates of the same flag are fine.
func CheckExclusive(flags ...Flag) error {
	for _, fam := range exclusiveFamilies {
		var first Flag
		for _, f := range flags {
			v := Flag(uint32(f) & fam.Mask)
			switch {
			case v == 0:
			case first == 0:
				first = v
			case first != v:
				return &FlagConflictError{Family: fam.Name, Flags: []Flag{first, v}}
			}
		}
	}
	return nil
}

// Buttons extracts the button set from a folded style.
func Buttons(style uint32) Flag {
	return Flag(style & FamilyButtons.Mask)
}

// DefaultButtonIndex returns the zero-based default button from a folded style.
func DefaultButtonIndex(style uint32) int {
	return int((style & FamilyDefault.Mask) >> 8)
}
