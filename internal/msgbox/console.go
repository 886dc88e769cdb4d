package msgbox

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ConsoleHost renders the message box as a text prompt. It is used where no
// native dialog is available and by the CLI's --console mode.
type ConsoleHost struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleHost prompts on out and reads answers from in.
func NewConsoleHost(in io.Reader, out io.Writer) *ConsoleHost {
	return &ConsoleHost{in: bufio.NewReader(in), out: out}
}

// MessageBox prints the dialog and blocks until a button is chosen. An empty
// line picks the default button. End of input dismisses the box when the
// button set allows it.
func (h *ConsoleHost) MessageBox(_ uintptr, text, title []uint16, style uint32) (int32, error) {
	buttons := ButtonsFor(style)
	def := DefaultButton(style)

	fmt.Fprintf(h.out, "[%s]%s\n%s\n", DecodeBuffer(title), iconTag(style), DecodeBuffer(text))
	for {
		fmt.Fprintln(h.out, buttonLine(buttons, def))
		fmt.Fprint(h.out, "Choice: ")
		line, err := h.in.ReadString('\n')
		choice := strings.TrimSpace(line)
		if err != nil && choice == "" {
			if errors.Is(err, io.EOF) {
				if o, ok := DismissOutcome(style); ok {
					return int32(o), nil
				}
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if choice == "" {
			return int32(def), nil
		}
		if o, ok := matchButton(buttons, choice); ok {
			return int32(o), nil
		}
		fmt.Fprintf(h.out, "Unknown choice %q.\n", choice)
		if err != nil {
			return 0, io.ErrUnexpectedEOF
		}
	}
}

func buttonLine(buttons []Outcome, def Outcome) string {
	parts := make([]string, 0, len(buttons))
	for i, b := range buttons {
		label := b.Label()
		if b == def {
			label += "*"
		}
		parts = append(parts, fmt.Sprintf("%d) %s", i+1, label))
	}
	return "  " + strings.Join(parts, "  ")
}

func matchButton(buttons []Outcome, choice string) (Outcome, bool) {
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(buttons) {
			return buttons[n-1], true
		}
		return 0, false
	}
	for _, b := range buttons {
		if strings.EqualFold(b.Label(), choice) || strings.EqualFold(b.String(), choice) {
			return b, true
		}
	}
	return 0, false
}

func iconTag(style uint32) string {
	switch Flag(style & FamilyIcon.Mask) {
	case IconError:
		return " error"
	case IconQuestion:
		return " question"
	case IconExclamation:
		return " warning"
	case IconInformation:
		return " info"
	default:
		return ""
	}
}
