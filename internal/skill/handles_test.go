package skill

import (
	"errors"
	"slices"
	"testing"
)

const enumSource = `-- skill ids
SKID = {
	NV_BASIC = 1,
	NV_FIRSTAID = 2, --[[ legacy
	OLD = 99, ]]
	SM_SWORD = 0x3,
	BROKEN = x,
}
`

func TestExtractHandleIDs(t *testing.T) {
	table, err := ExtractHandleIDs(enumSource, "SKID")
	if err != nil {
		t.Fatalf("ExtractHandleIDs() error = %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	for handle, want := range map[string]int64{"NV_BASIC": 1, "NV_FIRSTAID": 2, "SM_SWORD": 3} {
		if got, ok := table.ID(handle); !ok || got != want {
			t.Errorf("ID(%q) = %d, %v, want %d", handle, got, ok, want)
		}
		if got, ok := table.Handle(want); !ok || got != handle {
			t.Errorf("Handle(%d) = %q, %v, want %q", want, got, ok, handle)
		}
	}
	if _, ok := table.ID("OLD"); ok {
		t.Error("ID(OLD) found, commented out entry should be ignored")
	}
	if _, ok := table.ID("BROKEN"); ok {
		t.Error("ID(BROKEN) found, non-numeric entry should be dropped")
	}
	if got := table.IDs(); !slices.Equal(got, []int64{1, 2, 3}) {
		t.Errorf("IDs() = %v, want [1 2 3]", got)
	}
}

func TestExtractHandleIDsIgnoresBlocksBeforeMarker(t *testing.T) {
	table, err := ExtractHandleIDs("X = { B = 5 }\nSKID = { A = 1 }", "SKID")
	if err != nil {
		t.Fatalf("ExtractHandleIDs() error = %v", err)
	}
	if _, ok := table.ID("B"); ok {
		t.Error("ID(B) found, block before the marker should be ignored")
	}
	if id, ok := table.ID("A"); !ok || id != 1 {
		t.Errorf("ID(A) = %d, %v, want 1", id, ok)
	}
}

func TestExtractHandleIDsLastWriteWins(t *testing.T) {
	table, err := ExtractHandleIDs("SKID = { A = 1, B = 1, A = 2 }", "SKID")
	if err != nil {
		t.Fatalf("ExtractHandleIDs() error = %v", err)
	}

	if id, _ := table.ID("A"); id != 2 {
		t.Errorf("ID(A) = %d, want 2", id)
	}
	if h, _ := table.Handle(1); h != "B" {
		t.Errorf("Handle(1) = %q, want B", h)
	}
	if h, _ := table.Handle(2); h != "A" {
		t.Errorf("Handle(2) = %q, want A", h)
	}
	if got := table.IDs(); !slices.Equal(got, []int64{1, 2}) {
		t.Errorf("IDs() = %v, want [1 2]", got)
	}
}

func TestExtractHandleIDsErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		marker  string
		wantErr error
	}{
		{"marker absent", "OTHER = { A = 1 }", "SKID", ErrMarkerNotFound},
		{"marker only in comment", "-- SKID\nX = { A = 1 }", "SKID", ErrMarkerNotFound},
		{"empty marker", "SKID = { A = 1 }", "", ErrMarkerNotFound},
		{"no block", "SKID = nil", "SKID", ErrBlockNotFound},
		{"unbalanced block", "SKID = { A = 1,", "SKID", ErrBlockNotFound},
		{"empty block", "SKID = { }", "SKID", ErrNoEntries},
		{"no numeric entries", "SKID = { A = b, C }", "SKID", ErrNoEntries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ExtractHandleIDs(tt.src, tt.marker)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ExtractHandleIDs() error = %v, want %v", err, tt.wantErr)
			}
			if table != nil {
				t.Errorf("ExtractHandleIDs() table = %+v, want nil", table)
			}
		})
	}
}
