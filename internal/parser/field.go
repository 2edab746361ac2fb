package parser

import (
	"strings"

	"skid-extractor/internal/textutil"
)

// FieldString finds `field = "value"` in body and returns value.
//
// The field name must stand as a whole word. An empty result means the field
// is absent or has no quoted value; callers treat both the same way.
func FieldString(body, field string) string {
	if field == "" {
		return ""
	}

	for p := 0; ; {
		idx := strings.Index(body[p:], field)
		if idx < 0 {
			return ""
		}
		p += idx
		end := p + len(field)

		leftOK := p == 0 || !textutil.IsAlnum(body[p-1])
		rightOK := end >= len(body) || !textutil.IsAlnum(body[end])
		if !leftOK || !rightOK {
			p = end
			continue
		}

		eq := strings.IndexByte(body[end:], '=')
		if eq < 0 {
			return ""
		}
		eq += end

		q1 := strings.IndexByte(body[eq+1:], '"')
		if q1 < 0 {
			// Non-string value; keep looking past this assignment.
			p = eq + 1
			continue
		}
		q1 += eq + 1

		q2 := strings.IndexByte(body[q1+1:], '"')
		if q2 < 0 {
			return ""
		}
		return body[q1+1 : q1+1+q2]
	}
}
