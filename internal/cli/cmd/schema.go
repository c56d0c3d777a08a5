package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/bnema/glyphpick/internal/domain/entity"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Emit the JSON Schema of the stored icon value",
	Long: `Emit the JSON Schema describing the icon configuration value as it
is persisted on records.

Hosts embedding icon values in their own documents can use the schema
to validate the five stored fields (name, size, color, strokeWidth,
absoluteStrokeWidth).

Examples:
  glyphpick schema                      # Print to stdout
  glyphpick schema -o icon.schema.json  # Write to a file`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to a file instead of stdout")
}

func runSchema(_ *cobra.Command, _ []string) error {
	const schemaFilePerm = 0o644

	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.IconConfiguration{})
	schema.ID = "https://github.com/bnema/glyphpick/icon-configuration.schema.json"
	schema.Title = "Icon Configuration"
	schema.Description = "The value persisted by a glyphpick icon form field"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if schemaOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(schemaOutput, data, schemaFilePerm); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	fmt.Printf("Wrote schema to %s\n", schemaOutput)
	return nil
}
