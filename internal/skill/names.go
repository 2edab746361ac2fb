package skill

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"skid-extractor/internal/parser"
	"skid-extractor/internal/textutil"
)

// DefaultNameField is the record field holding the display name.
const DefaultNameField = "SkillName"

// ExtractNames walks the [KEY] = { ... } records of the info-list source and
// returns id -> display name for every record whose key resolves through t
// and whose field is a non-empty string. Later records win on the same id.
//
// It never fails: malformed records are skipped and an unbalanced record ends
// the scan, keeping whatever was collected before it.
func ExtractNames(src string, t *Table, field string) map[int64]string {
	names := make(map[int64]string)
	text := parser.StripComments(src)

	records, unresolved := 0, 0
	parser.WalkRecords(text, func(r parser.Record) {
		records++

		id, ok := ResolveKey(r.Key, t)
		if !ok {
			unresolved++
			return
		}

		if name := parser.FieldString(r.Body, field); name != "" {
			names[id] = name
		}
	})

	log.Debug().
		Int("records", records).
		Int("unresolved", unresolved).
		Int("named", len(names)).
		Msg("Parsed info-list records")

	return names
}

// ResolveKey turns a record key into an id. All-digit keys are read as
// decimal ids. Anything else is a handle, possibly prefixed by a dotted path
// (SKID.NV_BASIC), looked up in t. Negative ids count as unresolved.
func ResolveKey(key string, t *Table) (int64, bool) {
	if textutil.IsDigits(key) {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}

	handle := key
	if dot := strings.LastIndexByte(key, '.'); dot >= 0 {
		handle = key[dot+1:]
	}
	handle = textutil.RemoveSpace(handle)
	if handle == "" || t == nil {
		return 0, false
	}

	id, ok := t.ID(handle)
	if !ok || id < 0 {
		return 0, false
	}
	return id, true
}
