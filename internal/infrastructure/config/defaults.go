package config

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// Dark palette defaults
	defaultDarkBackground     = "#0a0a0b"
	defaultDarkSurface        = "#1a1a1b"
	defaultDarkSurfaceVariant = "#2d2d2d"
	defaultDarkText           = "#ffffff"
	defaultDarkMuted          = "#909090"
	defaultDarkAccent         = "#4ade80"
	defaultDarkBorder         = "#333333"
)

// defaultWarmIcons is the fixed set of commonly picked names resolved
// proactively on first widget mount.
func defaultWarmIcons() []string {
	return []string{
		"check",
		"x",
		"plus",
		"minus",
		"search",
		"settings",
		"user",
		"calendar",
		"mail",
		"star",
		"heart",
		"home",
	}
}

// DefaultConfig returns the default configuration values for glyphpick.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is set dynamically in config.Load()
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Appearance: AppearanceConfig{
			DarkPalette: ColorPalette{
				Background:     defaultDarkBackground,
				Surface:        defaultDarkSurface,
				SurfaceVariant: defaultDarkSurfaceVariant,
				Text:           defaultDarkText,
				Muted:          defaultDarkMuted,
				Accent:         defaultDarkAccent,
				Border:         defaultDarkBorder,
			},
		},
		Picker: PickerConfig{
			WarmIcons: defaultWarmIcons(),
			Mouse:     true,
		},
	}
}
