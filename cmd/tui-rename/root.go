package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChaoticWyrme/tui-rename/pkg/rename/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "tui-rename [files...]",
		Short: "Preview and apply pattern-based bulk renames",
		Long: `tui-rename renames a set of files with a regular-expression search
pattern and a replacement template. Every proposed name is recomputed live as
you type; before anything touches the disk, the set is validated for name
collisions and for files that cannot be renamed, and each problem can be
overridden or aborted.

Examples:
  tui-rename *.jpg                    # Rename photos interactively
  tui-rename -f 'IMG_(\d+)' -r 'trip_$1' *.jpg
  tui-rename -n -f foo -r bar *.txt   # Preview the plan, change nothing
  tui-rename history                  # Review past rename batches`,
		Args: cobra.ArbitraryArgs,
		RunE: runRename,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/tui-rename/config.yaml)")
	rootCmd.PersistentFlags().StringP("find", "f", "", "initial search pattern")
	rootCmd.PersistentFlags().StringP("replace", "r", "", "initial replacement template")
	rootCmd.PersistentFlags().BoolP("no-interactive", "n", false, "print the rename plan and exit without renaming")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "output the plan as JSON (implies --no-interactive)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	_ = viper.BindPFlag("find", rootCmd.PersistentFlags().Lookup("find"))
	_ = viper.BindPFlag("replace", rootCmd.PersistentFlags().Lookup("replace"))
	_ = viper.BindPFlag("no_interactive", rootCmd.PersistentFlags().Lookup("no-interactive"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "tui-rename"))
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "tui-rename"))
		}
	}

	viper.SetEnvPrefix("TUI_RENAME")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("logging.level", config.DefaultLogLevel)
	viper.SetDefault("manifest.enabled", true)
	viper.SetDefault("manifest.retention_days", config.DefaultRetentionDays)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printInfo prints a message unless quiet mode is enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
