package parser

import "strings"

const (
	blockCommentOpen  = "--[["
	blockCommentClose = "]]"
	lineComment       = "--"
)

// StripComments removes Lua block (--[[ ... ]]) and line (--) comments.
//
// Block comment bodies are blanked rather than dropped: newlines survive and
// every other character becomes a space, so line numbers stay stable. An
// opener with no closer leaves the rest of the text to the line comment pass.
func StripComments(s string) string {
	return stripLineComments(stripBlockComments(s))
}

func stripBlockComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if !strings.HasPrefix(s[i:], blockCommentOpen) {
			b.WriteByte(s[i])
			i++
			continue
		}

		bodyStart := i + len(blockCommentOpen)
		end := strings.Index(s[bodyStart:], blockCommentClose)
		if end < 0 {
			// Unterminated, keep the remainder as is.
			b.WriteString(s[i:])
			break
		}

		for _, c := range []byte(s[bodyStart : bodyStart+end]) {
			if c == '\n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("  ")
		i = bodyStart + end + len(blockCommentClose)
	}

	return b.String()
}

func stripLineComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if !strings.HasPrefix(s[i:], lineComment) {
			b.WriteByte(s[i])
			i++
			continue
		}

		// Drop up to the newline, then emit it in place of the comment.
		nl := strings.IndexByte(s[i:], '\n')
		b.WriteByte('\n')
		if nl < 0 {
			break
		}
		i += nl + 1
	}

	return b.String()
}
