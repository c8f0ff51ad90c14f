package display

import "strings"

// Center pads s to Width on both sides,
// with any odd leftover space on the right. Longer strings are cut.
func Center(s string) string {
	r := []rune(s)
	if len(r) >= Width {
		return string(r[:Width])
	}
	pad := Width - len(r)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Left pads s on the right to Width.
func Left(s string) string {
	r := []rune(s)
	if len(r) >= Width {
		return string(r[:Width])
	}
	return s + strings.Repeat(" ", Width-len(r))
}

// Right pads s on the left to Width.
func Right(s string) string {
	r := []rune(s)
	if len(r) >= Width {
		return string(r[:Width])
	}
	return strings.Repeat(" ", Width-len(r)) + s
}

// Blank is an empty line.
var Blank = strings.Repeat(" ", Width)
