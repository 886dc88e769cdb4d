// Package msgbox shows a modal message box and reports which button was
// pressed.
//
// Text and title are converted to NUL-terminated UTF-16, the options are
// OR-ed into a single style value and the host is called exactly once. The
// call blocks until the user closes the dialog; there is no timeout.
package msgbox

import (
	"log/slog"

	"native-messagebox/internal/logger"
)

// Host is the facility that actually draws the dialog. Buffers are
// NUL-terminated and only valid for the duration of the call.
type Host interface {
	MessageBox(owner uintptr, text, title []uint16, style uint32) (int32, error)
}

// Request is a single dialog to show.
type Request struct {
	Text    string
	Title   string
	Options []Flag
}

// Invoker shows message boxes on a Host.
type Invoker struct {
	host   Host
	log    *slog.Logger
	strict bool
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithLogger sets the logger used for per-call debug records.
func WithLogger(log *slog.Logger) Option {
	return func(i *Invoker) {
		if log != nil {
			i.log = log
		}
	}
}

// WithStrictFlags rejects options that combine two members of an exclusive
// family instead of passing the merged bits to the host.
func WithStrictFlags() Option {
	return func(i *Invoker) { i.strict = true }
}

// New creates an Invoker. A nil host means DefaultHost().
func New(host Host, opts ...Option) *Invoker {
	if host == nil {
		host = DefaultHost()
	}
	inv := &Invoker{
		host: host,
		log:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Show displays text with the given title and returns the pressed button.
//
// Text is validated before title and the first invalid string is reported;
// the host is not called in that case.
func (i *Invoker) Show(text, title string, options ...Flag) (Outcome, error) {
	textBuf, err := EncodeString(text)
	if err != nil {
		return 0, err
	}
	titleBuf, err := EncodeString(title)
	if err != nil {
		return 0, err
	}
	if i.strict {
		if err := CheckExclusive(options...); err != nil {
			return 0, err
		}
	}
	style := Fold(options...)

	i.log.Debug("showing message box", "title", title, "style", style)
	code, hostErr := i.host.MessageBox(0, textBuf, titleBuf, style)
	outcome, err := OutcomeFromCode(code)
	if err != nil {
		if ure, ok := err.(*UnexpectedReturnError); ok && hostErr != nil {
			ure.Err = hostErr
		}
		i.log.Debug("message box failed", "code", code, "error", err)
		return 0, err
	}
	i.log.Debug("message box closed", "outcome", outcome.String())
	return outcome, nil
}

// ShowRequest is Show for a prepared Request.
func (i *Invoker) ShowRequest(req Request) (Outcome, error) {
	return i.Show(req.Text, req.Title, req.Options...)
}

// Show displays a message box on the default host.
func Show(text, title string, options ...Flag) (Outcome, error) {
	return New(nil).Show(text, title, options...)
}
