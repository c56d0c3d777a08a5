package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "console", mgr.viper.GetString("logging.format"))
	assert.True(t, mgr.viper.GetBool("picker.mouse"))
	assert.NotEmpty(t, mgr.viper.GetStringSlice("picker.warm_icons"))
}

func TestNormalizeConfig_Logging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "DEBUG"
	cfg.Logging.Format = "pretty"

	normalizeConfig(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestNormalizeConfig_DropsEmptyWarmIcons(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Picker.WarmIcons = []string{"check", "  ", "", "bell"}

	normalizeConfig(cfg)

	assert.Equal(t, []string{"check", "bell"}, cfg.Picker.WarmIcons)
}
