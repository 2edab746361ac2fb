package parser

import (
	"strings"

	"skid-extractor/internal/textutil"
)

// WalkRecords calls fn for every [KEY] = { ... } record in text, in order.
//
// A bracketed key with no following '=' and '{' is skipped. Scanning stops at
// the first record whose braces never balance; records before it have already
// been delivered. Text is expected to be comment free.
func WalkRecords(text string, fn func(Record)) {
	for i := 0; ; {
		lb := strings.IndexByte(text[i:], '[')
		if lb < 0 {
			return
		}
		lb += i

		rb := strings.IndexByte(text[lb+1:], ']')
		if rb < 0 {
			return
		}
		rb += lb + 1

		key := textutil.Trim(text[lb+1 : rb])

		eq := strings.IndexByte(text[rb+1:], '=')
		if eq < 0 {
			i = rb + 1
			continue
		}
		eq += rb + 1

		ob := strings.IndexByte(text[eq+1:], '{')
		if ob < 0 {
			i = rb + 1
			continue
		}
		ob += eq + 1

		cb := MatchBrace(text, ob)
		if cb < 0 {
			return
		}

		fn(Record{Key: key, Body: text[ob+1 : cb]})
		i = cb + 1
	}
}
