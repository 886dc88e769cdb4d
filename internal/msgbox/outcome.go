package msgbox

import "fmt"

// Outcome identifies the button the user pressed.
type Outcome int32

const (
	OutcomeOK       Outcome = 1
	OutcomeCancel   Outcome = 2
	OutcomeAbort    Outcome = 3
	OutcomeRetry    Outcome = 4
	OutcomeIgnore   Outcome = 5
	OutcomeYes      Outcome = 6
	OutcomeNo       Outcome = 7
	OutcomeTryAgain Outcome = 10
	OutcomeContinue Outcome = 11
)

const unexpectedReturnMessage = "invalid return value from MessageBoxW"

// OutcomeFromCode translates a raw return code. Codes outside the known set,
// including the failure code 0, produce an *UnexpectedReturnError.
func OutcomeFromCode(code int32) (Outcome, error) {
	switch o := Outcome(code); o {
	case OutcomeOK, OutcomeCancel, OutcomeAbort, OutcomeRetry, OutcomeIgnore,
		OutcomeYes, OutcomeNo, OutcomeTryAgain, OutcomeContinue:
		return o, nil
	}
	return 0, &UnexpectedReturnError{Code: code, Msg: unexpectedReturnMessage}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeCancel:
		return "CANCEL"
	case OutcomeAbort:
		return "ABORT"
	case OutcomeRetry:
		return "RETRY"
	case OutcomeIgnore:
		return "IGNORE"
	case OutcomeYes:
		return "YES"
	case OutcomeNo:
		return "NO"
	case OutcomeTryAgain:
		return "TRYAGAIN"
	case OutcomeContinue:
		return "CONTINUE"
	default:
		return fmt.Sprintf("Outcome(%d)", int32(o))
	}
}

// Label is the caption shown on the button for this outcome.
func (o Outcome) Label() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeCancel:
		return "Cancel"
	case OutcomeAbort:
		return "Abort"
	case OutcomeRetry:
		return "Retry"
	case OutcomeIgnore:
		return "Ignore"
	case OutcomeYes:
		return "Yes"
	case OutcomeNo:
		return "No"
	case OutcomeTryAgain:
		return "Try Again"
	case OutcomeContinue:
		return "Continue"
	default:
		return o.String()
	}
}

// ButtonsFor lists the buttons a host shows for a folded style, left to right.
func ButtonsFor(style uint32) []Outcome {
	switch Buttons(style) {
	case OKCancel:
		return []Outcome{OutcomeOK, OutcomeCancel}
	case AbortRetryIgnore:
		return []Outcome{OutcomeAbort, OutcomeRetry, OutcomeIgnore}
	case YesNoCancel:
		return []Outcome{OutcomeYes, OutcomeNo, OutcomeCancel}
	case YesNo:
		return []Outcome{OutcomeYes, OutcomeNo}
	case RetryCancel:
		return []Outcome{OutcomeRetry, OutcomeCancel}
	case CancelTryContinue:
		return []Outcome{OutcomeCancel, OutcomeTryAgain, OutcomeContinue}
	default:
		return []Outcome{OutcomeOK}
	}
}

// DismissOutcome is what closing the window (or pressing Escape) yields.
// ok is false when the button set has no way to dismiss the box.
func DismissOutcome(style uint32) (Outcome, bool) {
	switch Buttons(style) {
	case OK:
		return OutcomeOK, true
	case AbortRetryIgnore, YesNo:
		return 0, false
	default:
		return OutcomeCancel, true
	}
}

// DefaultButton returns the button preselected for a folded style. An index
// past the last button falls back to the first one.
func DefaultButton(style uint32) Outcome {
	buttons := ButtonsFor(style)
	idx := DefaultButtonIndex(style)
	if idx >= len(buttons) {
		idx = 0
	}
	return buttons[idx]
}
