package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"skid-extractor/internal/skill"
)

// Row is one id of the merged table.
type Row struct {
	ID     int64  `json:"id"`
	Handle string `json:"handle"`
	Name   string `json:"name,omitempty"`
}

// Merge joins the handle table with the extracted names on id. Rows come back
// in ascending id order, one per id known to t.
func Merge(t *skill.Table, names map[int64]string) []Row {
	ids := t.IDs()
	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		handle, _ := t.Handle(id)
		rows = append(rows, Row{ID: id, Handle: handle, Name: names[id]})
	}
	return rows
}

// WriteIDHandles writes "<id> <handle>" for every row and returns the line count.
func WriteIDHandles(w io.Writer, rows []Row) (int, error) {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%d %s\n", r.ID, r.Handle); err != nil {
			return 0, fmt.Errorf("write id listing: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flush id listing: %w", err)
	}
	return len(rows), nil
}

// WriteNameTable writes "<handle>#<name>#" for every row that has a name and
// returns the line count.
func WriteNameTable(w io.Writer, rows []Row) (int, error) {
	bw := bufio.NewWriter(w)
	wrote := 0
	for _, r := range rows {
		if r.Name == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s#%s#\n", r.Handle, r.Name); err != nil {
			return wrote, fmt.Errorf("write name table: %w", err)
		}
		wrote++
	}
	if err := bw.Flush(); err != nil {
		return wrote, fmt.Errorf("flush name table: %w", err)
	}
	return wrote, nil
}

// WriteFile creates (or truncates) path and fills it with write.
func WriteFile(path string, rows []Row, write func(io.Writer, []Row) (int, error)) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file %s: %w", path, cerr)
		}
	}()

	return write(f, rows)
}

// ExportJSON writes all rows to a JSON file.
func ExportJSON(outputPath string, rows []Row) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	log.Info().Str("path", outputPath).Int("rows", len(rows)).Msg("Exported table to JSON")
	return nil
}
