package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// reflectSchema builds the JSON schema for the configuration.
func reflectSchema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/glyphpick/config.schema.json"
	schema.Title = "glyphpick Configuration"
	schema.Description = "Configuration schema for glyphpick, a terminal icon picker form field"

	return schema
}

// SchemaJSON returns the configuration schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(reflectSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile generates a JSON schema file for the configuration.
// This is called automatically when a default config is created.
func GenerateSchemaFile() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")

	data, err := SchemaJSON()
	if err != nil {
		return err
	}

	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", schemaFile)
	return nil
}
