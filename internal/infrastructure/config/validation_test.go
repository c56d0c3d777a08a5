package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_LoggingLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "info", level: "info", wantErr: false},
		{name: "debug", level: "debug", wantErr: false},
		{name: "empty", level: "", wantErr: false},
		{name: "invalid", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Logging.Level = tt.level

			err := validateConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "logging.level")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_PaletteHex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.DarkPalette.Accent = "green"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.dark_palette.accent")
}

func TestValidateConfig_WarmIconNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Picker.WarmIcons = []string{"check", "Arrow Right"}

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "picker.warm_icons")
}
