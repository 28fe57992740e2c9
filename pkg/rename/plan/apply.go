package plan

// Failure pairs an item with the error its rename produced.
type Failure struct {
	Item Item
	Err  error
}

// ApplyResult summarizes a commit.
type ApplyResult struct {
	// Attempted is the number of items a rename was issued for.
	Attempted int

	// Failures holds every item whose rename failed, in batch order.
	Failures []Failure
}

// ApplyAll renames every item in the set, flagged ones included; warnings
// are overridable, not exclusions. The batch is not transactional: each
// failure is recorded and the loop continues with the remaining items.
func ApplyAll(items []Item, fsys FS) ApplyResult {
	result := ApplyResult{Attempted: len(items)}
	for _, it := range items {
		if err := it.Rename(fsys); err != nil {
			result.Failures = append(result.Failures, Failure{Item: it, Err: err})
		}
	}
	return result
}
