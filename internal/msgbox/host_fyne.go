//go:build !windows && cgo

package msgbox

import (
	"fyne.io/fyne/v2"
	fyneApp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const fyneAppID = "io.github.native-messagebox"

// FyneHost draws the message box in a fyne window. The fyne event loop runs
// on the calling goroutine, which must be the main one, and cannot be
// restarted: only one dialog is shown per process, whichever FyneHost
// shows it.
type FyneHost struct{}

// NewFyneHost returns a fyne-backed host.
func NewFyneHost() *FyneHost {
	return &FyneHost{}
}

// MessageBox opens the window and blocks until a button is pressed or the
// window is dismissed. Calls after the first dialog of the process return
// ErrHostClosed.
func (h *FyneHost) MessageBox(_ uintptr, text, title []uint16, style uint32) (int32, error) {
	if err := fyneLoop.claim(); err != nil {
		return 0, err
	}

	application := fyneApp.NewWithID(fyneAppID)
	window := application.NewWindow(DecodeBuffer(title))
	window.SetFixedSize(true)

	var result int32
	finish := func(o Outcome) {
		result = int32(o)
		application.Quit()
	}

	label := widget.NewLabel(DecodeBuffer(text))
	label.Wrapping = fyne.TextWrapWord
	if style&uint32(TextRTL) != 0 {
		label.Alignment = fyne.TextAlignTrailing
	}

	def := DefaultButton(style)
	buttons := []fyne.CanvasObject{layout.NewSpacer()}
	for _, b := range ButtonsFor(style) {
		btn := widget.NewButton(b.Label(), func() { finish(b) })
		if b == def {
			btn.Importance = widget.HighImportance
		}
		buttons = append(buttons, btn)
	}
	if style&uint32(TextRTL) == 0 {
		buttons = append(buttons, layout.NewSpacer())
	}

	var icon fyne.CanvasObject
	if res := fyneIcon(style); res != nil {
		icon = widget.NewIcon(res)
	}
	body := container.NewBorder(nil, nil, icon, nil, label)
	if style&uint32(TextRTL) != 0 {
		body = container.NewBorder(nil, nil, nil, icon, label)
	}
	window.SetContent(container.NewVBox(body, container.NewHBox(buttons...)))

	window.SetCloseIntercept(func() {
		if o, ok := DismissOutcome(style); ok {
			finish(o)
		}
	})
	window.CenterOnScreen()
	window.ShowAndRun()
	return result, nil
}

func fyneIcon(style uint32) fyne.Resource {
	switch Flag(style & FamilyIcon.Mask) {
	case IconError:
		return theme.ErrorIcon()
	case IconQuestion:
		return theme.QuestionIcon()
	case IconExclamation:
		return theme.WarningIcon()
	case IconInformation:
		return theme.InfoIcon()
	default:
		return nil
	}
}

// DefaultHost returns a fyne-backed message box.
func DefaultHost() Host {
	return NewFyneHost()
}
