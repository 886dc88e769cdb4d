package msgbox

import (
	"strings"
	"unicode/utf16"
)

// EncodeString converts s to the NUL-terminated UTF-16 form the wide
// message box API expects. It fails if s itself contains a NUL.
func EncodeString(s string) ([]uint16, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &InvalidInputError{Value: s}
	}
	return append(utf16.Encode([]rune(s)), 0), nil
}

// DecodeBuffer reads a UTF-16 buffer up to its first NUL.
func DecodeBuffer(buf []uint16) string {
	for i, v := range buf {
		if v == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
