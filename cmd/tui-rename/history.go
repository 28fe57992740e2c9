package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChaoticWyrme/tui-rename/pkg/rename/config"
	"github.com/ChaoticWyrme/tui-rename/pkg/rename/manifest"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View rename history",
	Long: `View the history of committed rename batches.

Every applied rename writes a manifest entry recording each file's old path
and new name, along with any per-file errors. This is a record only; there is
no undo.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a specific batch",
	Long:  `Display detailed information about a specific rename batch by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean up old history entries",
	Long:  `Remove history entries older than the retention period.`,
	RunE:  runHistoryClean,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// getManifest returns a manifest instance with the configured directory.
func getManifest() (*manifest.Manifest, error) {
	cfg, err := config.Load()
	if err == nil && cfg.Manifest.Path != "" {
		return manifest.New(cfg.Manifest.Path)
	}

	manifestDir, dirErr := config.ManifestDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to get manifest directory: %w", dirErr)
	}
	return manifest.New(manifestDir)
}

// runHistory lists recent rename batches.
func runHistory(cmd *cobra.Command, args []string) error {
	m, err := getManifest()
	if err != nil {
		return fmt.Errorf("failed to initialize manifest: %w", err)
	}

	entries, err := m.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		printInfo("No history entries found.")
		printInfo("Run 'tui-rename [files...]' to rename files.")
		return nil
	}

	fmt.Printf("\n%-44s  %-8s  %-8s  %-8s\n", "ID", "PLANNED", "RENAMED", "FAILED")
	fmt.Println(strings.Repeat("-", 76))

	for _, entry := range entries {
		fmt.Printf("%-44s  %-8d  %-8d  %-8d\n",
			truncateString(entry.ID, 44),
			entry.Summary.Planned,
			entry.Summary.Attempted-entry.Summary.Failed,
			entry.Summary.Failed,
		)
	}

	fmt.Println(strings.Repeat("-", 76))
	fmt.Printf("\nShowing %d entries. Use --limit to see more.\n", len(entries))
	fmt.Println("Use 'tui-rename history show <id>' for details on a specific entry.")

	return nil
}

// runHistoryShow displays details of one rename batch.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	m, err := getManifest()
	if err != nil {
		return fmt.Errorf("failed to initialize manifest: %w", err)
	}

	entry, err := m.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	fmt.Println("\nRename Batch")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("ID:         %s\n", entry.ID)
	fmt.Printf("Timestamp:  %s\n", entry.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Planned:    %d\n", entry.Summary.Planned)
	fmt.Printf("Attempted:  %d\n", entry.Summary.Attempted)
	fmt.Printf("Failed:     %d\n", entry.Summary.Failed)

	if len(entry.Files) > 0 {
		fmt.Println("\nFiles:")
		fmt.Println(strings.Repeat("-", 60))
		for _, file := range entry.Files {
			if file.Error != "" {
				fmt.Printf("FAILED %s -> %s (%s)\n", file.Path, file.Renamed, file.Error)
				continue
			}
			fmt.Printf("       %s -> %s\n", file.Path, file.Renamed)
		}
	}

	return nil
}

// runHistoryClean removes old history entries.
func runHistoryClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	m, err := getManifest()
	if err != nil {
		return fmt.Errorf("failed to initialize manifest: %w", err)
	}

	retentionDays := cfg.Manifest.RetentionDays
	if retentionDays <= 0 {
		retentionDays = config.DefaultRetentionDays
	}

	printInfo("Cleaning history entries older than %d days...", retentionDays)
	if err := m.Cleanup(retentionDays); err != nil {
		return fmt.Errorf("failed to clean history: %w", err)
	}
	printInfo("History cleanup complete.")
	return nil
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
