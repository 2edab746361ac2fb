package skill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"skid-extractor/internal/parser"
)

var (
	// ErrMarkerNotFound means the enumeration table name does not occur in the source.
	ErrMarkerNotFound = errors.New("enumeration marker not found")
	// ErrBlockNotFound means no balanced { ... } follows the marker.
	ErrBlockNotFound = errors.New("enumeration block not found")
	// ErrNoEntries means the block held no parseable NAME = NUMBER entry.
	ErrNoEntries = errors.New("no enumeration entries parsed")
)

// ExtractHandleIDs reads the `marker = { HANDLE = NUMBER, ... }` table out of
// the enumeration source and returns it as a Table.
func ExtractHandleIDs(src, marker string) (*Table, error) {
	text := parser.StripComments(src)

	p := strings.Index(text, marker)
	if marker == "" || p < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}

	block, ok := parser.FindBlock(text, p)
	if !ok {
		return nil, fmt.Errorf("%w after %q", ErrBlockNotFound, marker)
	}

	entries := parser.ParseEntries(block.Body(text))
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoEntries, marker)
	}

	t := NewTable(entries)
	log.Debug().
		Str("marker", marker).
		Int("entries", len(entries)).
		Int("ids", t.Len()).
		Msg("Parsed enumeration table")

	return t, nil
}
