package parser

import (
	"math"
	"strconv"
	"strings"

	"skid-extractor/internal/textutil"
)

// ParseEntries splits a flat table body into NAME = NUMBER entries.
//
// Entries are separated by commas with no nesting awareness. Chunks without
// '=', with an empty side, or with a value that does not start with a number
// are dropped.
func ParseEntries(body string) []Entry {
	var entries []Entry
	for _, chunk := range strings.Split(body, ",") {
		chunk = textutil.Trim(chunk)
		if chunk == "" {
			continue
		}
		if e, ok := parseEntry(chunk); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func parseEntry(chunk string) (Entry, bool) {
	name, val, ok := strings.Cut(chunk, "=")
	if !ok {
		return Entry{}, false
	}
	name = textutil.Trim(name)
	val = textutil.Trim(val)
	if name == "" || val == "" {
		return Entry{}, false
	}

	if semi := strings.IndexByte(val, ';'); semi >= 0 {
		val = textutil.Trim(val[:semi])
	}

	n, ok := ParseInt(val)
	if !ok {
		return Entry{}, false
	}
	return Entry{Name: name, Value: n}, true
}

// ParseInt reads an integer the way C's strtoll does with base 0: optional
// sign, then 0x/0X for hex, a leading 0 for octal, decimal otherwise. The
// longest valid prefix is used and trailing garbage is ignored. It fails only
// when no digit can be read. Out of range values saturate.
func ParseInt(s string) (int64, bool) {
	i := 0
	for i < len(s) && textutil.IsSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := 10
	switch {
	case i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && digitIn(s[i+2], 16):
		base = 16
		i += 2
	case i < len(s) && s[i] == '0':
		base = 8
	}

	start := i
	for i < len(s) && digitIn(s[i], base) {
		i++
	}
	if i == start {
		return 0, false
	}

	u, err := strconv.ParseUint(s[start:i], base, 64)
	if err != nil {
		// Only a range error is possible here.
		u = math.MaxUint64
	}

	if neg {
		if u >= 1<<63 {
			return math.MinInt64, true
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return math.MaxInt64, true
	}
	return int64(u), true
}

func digitIn(c byte, base int) bool {
	switch base {
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return c >= '0' && c <= '9'
	}
}
