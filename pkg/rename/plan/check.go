package plan

import "os"

// CheckResult aggregates the problems found in a proposed rename set. It is
// recomputed fresh on every apply attempt; both the pattern state and the
// filesystem may have changed since the last one.
type CheckResult struct {
	// ConflictingNames lists proposed names shared by two or more items.
	// The first occurrence of a name is never flagged; each later
	// occurrence contributes one entry, so N items sharing a name yield
	// N-1 entries of that name, in encounter order.
	ConflictingNames []string `json:"conflicting_names"`

	// PermissionProblems lists the original full paths of items whose
	// metadata could not be read or whose target is read-only.
	PermissionProblems []string `json:"permission_problems"`
}

// Clean reports whether the set has no conflicts and no permission problems.
func (r CheckResult) Clean() bool {
	return len(r.ConflictingNames) == 0 && len(r.PermissionProblems) == 0
}

// Check validates a rename set for name collisions and non-renameable items.
// It mutates nothing and is safe to call repeatedly.
//
// The renameability check is fail-closed: a metadata read error counts as a
// permission problem rather than being ignored.
func Check(items []Item, fsys FS) CheckResult {
	var result CheckResult

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.Renamed]; dup {
			result.ConflictingNames = append(result.ConflictingNames, it.Renamed)
			continue
		}
		seen[it.Renamed] = struct{}{}
	}

	for _, it := range items {
		info, err := fsys.Stat(it.Location)
		if err != nil || readOnly(info.Mode()) {
			result.PermissionProblems = append(result.PermissionProblems, it.Location)
		}
	}

	return result
}

// readOnly reports whether the mode grants write permission to nobody.
func readOnly(mode os.FileMode) bool {
	return mode.Perm()&0o222 == 0
}
