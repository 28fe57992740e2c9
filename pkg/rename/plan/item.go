// Package plan implements the rename planning engine: candidate items, the
// search/replace pattern state, collision and renameability checks, and the
// batch apply step that performs the actual filesystem renames.
package plan

import (
	"fmt"
	"path/filepath"
)

// Item is one rename candidate: a file on disk plus its proposed new name.
type Item struct {
	// Original is the file's current name (final path component only).
	Original string `json:"original"`

	// Renamed is the proposed new name, recomputed whenever the pattern
	// changes. It starts out equal to Original.
	Renamed string `json:"renamed"`

	// Location is the full path of the file on disk.
	Location string `json:"location"`
}

// NewItem creates an item for the file at path. The proposed name is
// initialized to the current name.
func NewItem(path string) Item {
	name := filepath.Base(path)
	return Item{
		Original: name,
		Renamed:  name,
		Location: path,
	}
}

// ApplyPattern recomputes Renamed by applying p to the entire original name,
// extension included.
func (it *Item) ApplyPattern(p *Patterns) {
	it.Renamed = p.Apply(it.Original)
}

// TargetPath returns the destination path for the rename: the same parent
// directory as Location with Renamed as the final component.
func (it *Item) TargetPath() string {
	return filepath.Join(filepath.Dir(it.Location), it.Renamed)
}

// Rename moves the file from Location to TargetPath. It performs no
// validation; callers are expected to have run Check first. Renames never
// cross directories.
func (it *Item) Rename(fsys FS) error {
	if err := fsys.Rename(it.Location, it.TargetPath()); err != nil {
		return fmt.Errorf("rename %s: %w", it.Original, err)
	}
	return nil
}

// ApplyPatternAll recomputes every item's proposed name. It runs over the
// full set; recomputation is never incremental.
func ApplyPatternAll(items []Item, p *Patterns) {
	for i := range items {
		items[i].ApplyPattern(p)
	}
}
