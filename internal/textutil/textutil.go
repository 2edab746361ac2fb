package textutil

import "strings"

// blank is the set of characters Trim removes from both ends.
const blank = " \t\r\n"

// Trim cuts spaces, tabs and line breaks from both ends of s.
func Trim(s string) string {
	return strings.Trim(s, blank)
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsSpace reports whether b is ASCII whitespace, including \v and \f.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// RemoveSpace drops every ASCII whitespace byte from s. Other bytes are kept
// as is, so text in a legacy encoding survives untouched.
func RemoveSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !IsSpace(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
