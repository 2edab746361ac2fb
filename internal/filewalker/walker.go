package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Walker locates client data files by base name under a directory tree.
// Names are matched case-insensitively, since client archives are extracted
// on case-insensitive file systems as often as not.
type Walker struct {
	names []string
}

// NewWalker creates a Walker looking for the given base names.
func NewWalker(names ...string) *Walker {
	return &Walker{names: names}
}

// Walk returns the first path found for each wanted name, keyed by the name
// as passed to NewWalker. Names with no match are absent from the result.
func (w *Walker) Walk(root string) (map[string]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	wanted := make(map[string]string, len(w.names))
	for _, name := range w.names {
		wanted[strings.ToLower(name)] = name
	}

	found := make(map[string]string, len(w.names))

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		name, ok := wanted[strings.ToLower(info.Name())]
		if !ok {
			return nil
		}
		if _, seen := found[name]; !seen {
			found[name] = path
		}

		if len(found) == len(wanted) {
			return filepath.SkipAll
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("found", len(found)).Int("wanted", len(wanted)).Str("root", root).Msg("Located data files")
	return found, nil
}
