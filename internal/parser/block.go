package parser

import "strings"

// Block is a balanced { ... } span located in a larger text.
type Block struct {
	// Open is the offset of the opening brace.
	Open int
	// Close is the offset of the matching closing brace.
	Close int
}

// Body returns the text between the braces.
func (b Block) Body(text string) string {
	return text[b.Open+1 : b.Close]
}

// FindBlock locates the first '{' at or after from and its matching '}'.
// It returns false when there is no opening brace or the braces never balance.
func FindBlock(text string, from int) (Block, bool) {
	if from < 0 {
		from = 0
	}
	if from >= len(text) {
		return Block{}, false
	}

	open := strings.IndexByte(text[from:], '{')
	if open < 0 {
		return Block{}, false
	}
	open += from

	closing := MatchBrace(text, open)
	if closing < 0 {
		return Block{}, false
	}
	return Block{Open: open, Close: closing}, true
}

// MatchBrace returns the offset of the '}' closing the '{' at open, or -1.
func MatchBrace(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
