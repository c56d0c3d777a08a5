package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/glyphpick/internal/domain/icon"
)

var (
	catalogGlyphs bool
	catalogJSON   bool
	catalogPage   int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [query]",
	Short: "List icons from the catalog",
	Long: `List icon names from the bundled catalog, one per line.

With a query argument only icons whose name contains the query are
listed (case-insensitive). The output is pipe-friendly and pairs well
with fuzzy pickers:

  glyphpick catalog | fzf
  glyphpick catalog arrow
  glyphpick catalog --glyphs --page 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().BoolVar(&catalogGlyphs, "glyphs", false, "prefix each name with its resolved glyph")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogCmd.Flags().IntVar(&catalogPage, "page", 0, "show only one page of results (1-based)")
}

func runCatalog(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	matches := app.Catalog.Filter(query)
	if catalogPage > 0 {
		pageCount := icon.PageCount(len(matches))
		if catalogPage > pageCount {
			return fmt.Errorf("page %d out of range: %d matches fill %d page(s)", catalogPage, len(matches), pageCount)
		}
		matches = icon.Paginate(matches, catalogPage-1)
	}

	if catalogJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	for _, name := range matches {
		if catalogGlyphs {
			ic := app.Resolver.Resolve(app.Ctx(), name)
			fmt.Printf("%s\t%s\n", ic.Glyph, name)
			continue
		}
		fmt.Println(name)
	}
	return nil
}
