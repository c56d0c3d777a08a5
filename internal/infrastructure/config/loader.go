package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")   // TOML as default format

	// Add config paths
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Set up environment variable support
	v.SetEnvPrefix("GLYPHPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Most variables are handled automatically via AutomaticEnv() with
	// the GLYPHPICK_ prefix (e.g., GLYPHPICK_DATABASE_PATH). Explicit
	// bindings below cover names that differ from the dotted key.
	if err := v.BindEnv("logging.level", "GLYPHPICK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GLYPHPICK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "GLYPHPICK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind GLYPHPICK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if createErr := m.createDefaultConfig(); createErr != nil {
				configDir, _ := GetConfigDir()
				return fmt.Errorf(
					"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
					configDir,
					createErr,
				)
			}
			if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
				return fmt.Errorf(
					"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
					rereadErr,
				)
			}
		} else {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configDir, _ := GetConfigDir()
				configFile = filepath.Join(configDir, "config.toml")
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
		config.Logging.Level = strings.ToLower(config.Logging.Level)
	case "":
		config.Logging.Level = defaultLogLevel
	default:
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(config.Logging.Format) {
	case "", "console":
		config.Logging.Format = "console"
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	// Drop empty warm icon entries so the resolver never sees them.
	icons := config.Picker.WarmIcons[:0]
	for _, name := range config.Picker.WarmIcons {
		name = strings.TrimSpace(name)
		if name != "" {
			icons = append(icons, name)
		}
	}
	config.Picker.WarmIcons = icons
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save saves the provided configuration to disk and updates Viper.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate before writing so callers get immediate errors.
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	// Update Viper with the keys this tool manages.
	m.viper.Set("appearance.dark_palette.background", cfg.Appearance.DarkPalette.Background)
	m.viper.Set("appearance.dark_palette.surface", cfg.Appearance.DarkPalette.Surface)
	m.viper.Set("appearance.dark_palette.surface_variant", cfg.Appearance.DarkPalette.SurfaceVariant)
	m.viper.Set("appearance.dark_palette.text", cfg.Appearance.DarkPalette.Text)
	m.viper.Set("appearance.dark_palette.muted", cfg.Appearance.DarkPalette.Muted)
	m.viper.Set("appearance.dark_palette.accent", cfg.Appearance.DarkPalette.Accent)
	m.viper.Set("appearance.dark_palette.border", cfg.Appearance.DarkPalette.Border)
	m.viper.Set("picker.warm_icons", cfg.Picker.WarmIcons)
	m.viper.Set("picker.mouse", cfg.Picker.Mouse)
	m.viper.Set("logging.level", cfg.Logging.Level)
	m.viper.Set("logging.format", cfg.Logging.Format)

	if err := m.viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// When watching, the fsnotify callback would reload stale data we
	// just wrote; skip that cycle. Without a watcher, reload manually.
	if m.watching {
		m.skipNextReload = true
		m.config = cfg
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	// Ensure TOML format and write config
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created default configuration file: %s (TOML format)\n", configFile)

	// Schema generation is best-effort on first run.
	if err := GenerateSchemaFile(); err != nil {
		fmt.Printf("Warning: could not generate config schema: %v\n", err)
	}

	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setPickerDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.dark_palette.background", defaults.Appearance.DarkPalette.Background)
	m.viper.SetDefault("appearance.dark_palette.surface", defaults.Appearance.DarkPalette.Surface)
	m.viper.SetDefault("appearance.dark_palette.surface_variant", defaults.Appearance.DarkPalette.SurfaceVariant)
	m.viper.SetDefault("appearance.dark_palette.text", defaults.Appearance.DarkPalette.Text)
	m.viper.SetDefault("appearance.dark_palette.muted", defaults.Appearance.DarkPalette.Muted)
	m.viper.SetDefault("appearance.dark_palette.accent", defaults.Appearance.DarkPalette.Accent)
	m.viper.SetDefault("appearance.dark_palette.border", defaults.Appearance.DarkPalette.Border)
}

func (m *Manager) setPickerDefaults(defaults *Config) {
	m.viper.SetDefault("picker.warm_icons", defaults.Picker.WarmIcons)
	m.viper.SetDefault("picker.mouse", defaults.Picker.Mouse)
}

// New returns a new default configuration instance.
// This is a convenience function for getting default config without the full manager.
func New() *Config {
	return DefaultConfig()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
// This is useful for accessing watcher functionality.
func GetManager() *Manager {
	return globalManager
}
