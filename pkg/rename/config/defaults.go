package config

// Default configuration values for tui-rename.
const (
	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultRetentionDays is the default number of days to retain
	// manifest entries.
	DefaultRetentionDays = 30
)
