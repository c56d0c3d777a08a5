package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/glyphpick/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validatePicker(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch strings.ToLower(config.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}

	switch strings.ToLower(config.Logging.Format) {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}

	return validationErrors
}

func validateAppearance(config *Config) []string {
	return domainvalidation.ValidatePaletteHex(
		"appearance.dark_palette",
		config.Appearance.DarkPalette.Background,
		config.Appearance.DarkPalette.Surface,
		config.Appearance.DarkPalette.SurfaceVariant,
		config.Appearance.DarkPalette.Text,
		config.Appearance.DarkPalette.Muted,
		config.Appearance.DarkPalette.Accent,
		config.Appearance.DarkPalette.Border,
	)
}

func validatePicker(config *Config) []string {
	var validationErrors []string
	for _, name := range config.Picker.WarmIcons {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if !domainvalidation.IsIconName(name) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"picker.warm_icons entry %q must be a lowercase hyphenated name",
				name,
			))
		}
	}
	return validationErrors
}
