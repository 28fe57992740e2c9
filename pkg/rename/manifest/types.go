// Package manifest records rename operations on disk so past batches can be
// reviewed with the history command. It is a record, not an undo mechanism.
package manifest

import "time"

// Entry represents one committed rename batch.
type Entry struct {
	ID        string       `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Files     []FileRecord `json:"files"`
	Summary   Summary      `json:"summary"`
}

// FileRecord represents a single file in a rename batch.
type FileRecord struct {
	// Path is the file's full path before the rename.
	Path string `json:"path"`

	// Renamed is the new name (final path component).
	Renamed string `json:"renamed"`

	// Error holds the rename error message when the move failed.
	Error string `json:"error,omitempty"`
}

// Summary contains batch-level counts.
type Summary struct {
	// Planned is the count reported to the user before committing:
	// candidates minus permission-flagged items.
	Planned int `json:"planned"`

	// Attempted is the number of rename calls issued.
	Attempted int `json:"attempted"`

	// Failed is the number of renames that returned an error.
	Failed int `json:"failed"`
}
