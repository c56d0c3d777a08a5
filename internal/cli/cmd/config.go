package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/glyphpick/internal/cli/styles"
	"github.com/bnema/glyphpick/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage configuration",
	Long:  `Show the effective configuration or create the default config file.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the config file path and effective settings",
	Long: `Display the config file location and the settings currently in
effect, including defaults and environment overrides.`,
	RunE: runConfigStatus,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default config file",
	Long: `Create the configuration file with all defaults, plus a JSON schema
for editor completion. Does nothing if the file already exists.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configInitCmd)
}

// runConfigStatus shows the config file path and effective settings.
// It must not create the file as a side effect, so the missing-file
// case is answered before the config is loaded.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("locate config: %w", err)
	}

	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		renderer := styles.NewConfigRenderer(styles.NewTheme(config.New()))
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}

	if err := config.Init(); err != nil {
		renderer := styles.NewConfigRenderer(styles.NewTheme(config.New()))
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	cfg := config.Get()
	renderer := styles.NewConfigRenderer(styles.NewTheme(cfg))
	fmt.Println(renderer.RenderConfigInfo(configFile))
	fmt.Print(renderer.RenderSettings(cfg))
	return nil
}

// runConfigInit creates the default config file when missing.
func runConfigInit(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme(config.New()))

	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("locate config: %w", err)
	}

	if _, statErr := os.Stat(configFile); statErr == nil {
		fmt.Println(renderer.RenderAlreadyExists(configFile))
		return nil
	}

	// Loading creates the file and its JSON schema when missing.
	if err := config.Init(); err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	fmt.Println(renderer.RenderCreated(configFile))
	return nil
}
