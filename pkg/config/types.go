package config

// Config represents the complete application configuration
type Config struct {
	Storage StorageConfig `ini:"storage"`
	Window  WindowConfig  `ini:"window"`
	Log     LogConfig     `ini:"log"`
}

// StorageConfig selects where and how the collection is persisted
type StorageConfig struct {
	Backend string `ini:"backend"`
	DataDir string `ini:"data_dir"`
}

// WindowConfig holds the terminal size, in cells, used when nothing has been
// saved yet and the smallest size the TUI can lay itself out in
type WindowConfig struct {
	Width     int `ini:"width"`
	Height    int `ini:"height"`
	MinWidth  int `ini:"min_width"`
	MinHeight int `ini:"min_height"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	Level      string `ini:"level"`
	Format     string `ini:"format"`
	MaxSizeMB  int    `ini:"max_size_mb"`
	MaxBackups int    `ini:"max_backups"`
	MaxAgeDays int    `ini:"max_age_days"`
}
