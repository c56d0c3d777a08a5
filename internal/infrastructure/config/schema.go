package config

// Config represents the complete configuration for glyphpick.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Appearance controls the TUI theme.
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
	// Picker controls icon picker behavior shared by every icon field.
	Picker PickerConfig `mapstructure:"picker" yaml:"picker" toml:"picker"`
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	// Path to the record database. Defaults to the XDG data directory.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// ColorPalette groups the colors the TUI theme is built from.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border"`
}

// AppearanceConfig contains TUI appearance settings.
type AppearanceConfig struct {
	DarkPalette ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette"`
}

// PickerConfig contains icon picker settings.
type PickerConfig struct {
	// WarmIcons are resolved proactively on first widget mount. Names
	// not present in the registry are skipped.
	WarmIcons []string `mapstructure:"warm_icons" yaml:"warm_icons" toml:"warm_icons"`
	// Mouse enables mouse support (cell motion tracking) in the TUI.
	Mouse bool `mapstructure:"mouse" yaml:"mouse" toml:"mouse"`
}
