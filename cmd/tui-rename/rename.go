package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChaoticWyrme/tui-rename/cmd/tui-rename/tui"
	"github.com/ChaoticWyrme/tui-rename/pkg/rename/config"
	"github.com/ChaoticWyrme/tui-rename/pkg/rename/logging"
	"github.com/ChaoticWyrme/tui-rename/pkg/rename/manifest"
)

// runRename is the root command: classify the argument paths and hand the
// candidates to the TUI, or to the plan printer in non-interactive mode.
func runRename(cmd *cobra.Command, args []string) error {
	nonInteractive := viper.GetBool("no_interactive") || viper.GetBool("json")

	cfg, err := config.Load()
	if err != nil {
		printError("Failed to load configuration: %v", err)
		cfg = &config.Config{}
		cfg.Logging.Level = config.DefaultLogLevel
	}

	logLevel := cfg.Logging.Level
	if getVerbose() {
		logLevel = "debug"
	}
	// Outside the TUI the terminal is free, so diagnostics can go to stderr.
	consoleLevel := ""
	if nonInteractive {
		consoleLevel = "warn"
		if getVerbose() {
			consoleLevel = "debug"
		}
	}
	if err := logging.Init(logging.Config{
		Level:        logLevel,
		Path:         cfg.Logging.Path,
		ConsoleLevel: consoleLevel,
		TUIMode:      !nonInteractive,
	}); err != nil {
		printError("Failed to initialize logging: %v", err)
	}
	defer func() { _ = logging.Close() }()

	logger := logging.Get("cli")

	candidates, missing := classifyArgs(args, logger)

	find := viper.GetString("find")
	replace := viper.GetString("replace")
	if find != "" {
		if _, err := regexp.Compile(find); err != nil {
			printError("Invalid --find pattern, starting with an empty one: %v", err)
			find = ""
		}
	}

	if nonInteractive {
		return runPreview(candidates, missing, find, replace, viper.GetBool("json"))
	}

	var m *manifest.Manifest
	if cfg.Manifest.Enabled {
		dir := cfg.Manifest.Path
		if dir == "" {
			dir, err = config.ManifestDir()
			if err != nil {
				logger.Warn("manifest disabled", "error", err)
			}
		}
		if dir != "" {
			if m, err = manifest.New(dir); err != nil {
				logger.Warn("manifest disabled", "error", err)
			}
		}
	}

	return tui.Run(tui.Options{
		Candidates: candidates,
		Missing:    missing,
		Find:       find,
		Replace:    replace,
		Manifest:   m,
	})
}

// classifyArgs sorts the argument paths into rename candidates and missing
// paths. Existing non-files are skipped with a debug note.
func classifyArgs(args []string, logger *logging.Logger) ([]tui.Candidate, []string) {
	var candidates []tui.Candidate
	var missing []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err != nil:
			missing = append(missing, arg)
		case info.Mode().IsRegular():
			candidates = append(candidates, tui.Candidate{
				Path:    arg,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		default:
			logger.Debug(fmt.Sprintf("Ignoring directory: %s", arg))
		}
	}

	return candidates, missing
}
