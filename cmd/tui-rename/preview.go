package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ChaoticWyrme/tui-rename/cmd/tui-rename/tui"
	"github.com/ChaoticWyrme/tui-rename/pkg/rename/plan"
)

// previewOutput is the JSON shape of the non-interactive plan.
type previewOutput struct {
	Items   []plan.Item      `json:"items"`
	Check   plan.CheckResult `json:"check"`
	Missing []string         `json:"missing,omitempty"`
}

// runPreview prints the computed rename plan and its validation result
// without touching the filesystem.
func runPreview(candidates []tui.Candidate, missing []string, find, replace string, asJSON bool) error {
	if len(candidates) == 0 {
		return fmt.Errorf("no files provided")
	}

	patterns := plan.NewPatterns()
	if err := patterns.SetFind(find); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	patterns.SetReplace(replace)

	items := make([]plan.Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, plan.NewItem(c.Path))
	}
	plan.ApplyPatternAll(items, patterns)

	check := plan.Check(items, plan.OS)

	if asJSON {
		out := previewOutput{Items: items, Check: check, Missing: missing}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	nameWidth := len("ORIGINAL")
	for _, it := range items {
		if len(it.Original) > nameWidth {
			nameWidth = len(it.Original)
		}
	}

	fmt.Printf("%-*s  %-10s  %s\n", nameWidth, "ORIGINAL", "SIZE", "RENAMED")
	fmt.Println(strings.Repeat("-", nameWidth+40))
	for i, it := range items {
		marker := ""
		if it.Renamed == it.Original {
			marker = "  (unchanged)"
		}
		fmt.Printf("%-*s  %-10s  %s%s\n", nameWidth, it.Original,
			humanize.IBytes(uint64(candidates[i].Size)), it.Renamed, marker)
	}

	if len(check.ConflictingNames) > 0 {
		printInfo("\nConflicting names (%d):", len(check.ConflictingNames))
		for _, name := range check.ConflictingNames {
			printInfo("  %s", name)
		}
	}
	if len(check.PermissionProblems) > 0 {
		printInfo("\nCannot be renamed (%d):", len(check.PermissionProblems))
		for _, path := range check.PermissionProblems {
			printInfo("  %s", path)
		}
	}
	if len(missing) > 0 {
		printInfo("\nNot found (%d):", len(missing))
		for _, path := range missing {
			printInfo("  %s", path)
		}
	}
	if check.Clean() {
		printInfo("\nNo conflicts or permission problems.")
	}
	printInfo("\nPreview only; no files were renamed.")

	return nil
}
