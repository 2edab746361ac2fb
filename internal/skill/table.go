package skill

import (
	"slices"

	"skid-extractor/internal/parser"
)

// Table is the bidirectional handle <-> id mapping read from the enumeration
// source. It is built once and never modified afterwards.
type Table struct {
	byHandle map[string]int64
	byID     map[int64]string
}

// NewTable builds a Table from entries. Later entries overwrite earlier ones
// in both directions.
func NewTable(entries []parser.Entry) *Table {
	t := &Table{
		byHandle: make(map[string]int64, len(entries)),
		byID:     make(map[int64]string, len(entries)),
	}
	for _, e := range entries {
		t.byHandle[e.Name] = e.Value
		t.byID[e.Value] = e.Name
	}
	return t
}

// ID returns the id registered for handle.
func (t *Table) ID(handle string) (int64, bool) {
	id, ok := t.byHandle[handle]
	return id, ok
}

// Handle returns the handle registered for id.
func (t *Table) Handle(id int64) (string, bool) {
	h, ok := t.byID[id]
	return h, ok
}

// IDs returns every known id in ascending order.
func (t *Table) IDs() []int64 {
	ids := make([]int64, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len is the number of distinct ids.
func (t *Table) Len() int { return len(t.byID) }
