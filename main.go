package main

import (
	"native-messagebox/internal/msgbox"
)

func main() {
	_, _ = msgbox.Show(
		"Hello",
		"Title",
		msgbox.CancelTryContinue, msgbox.IconInformation, msgbox.TextRTL, msgbox.DefButton3,
	)
}
