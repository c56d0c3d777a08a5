package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/glyphpick/internal/application/usecase"
	"github.com/bnema/glyphpick/internal/cli/model"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/logging"
)

var (
	recordsJSON bool
	recordsPath string
)

var recordsCmd = &cobra.Command{
	Use:   "records [collection]",
	Short: "Browse stored records",
	Long: `Browse the records of a collection with their icon field summarized.

Confirming a row with enter prints its record ID on exit, so the
browser composes with the picker:

  glyphpick pick --record "$(glyphpick records posts)"

With --json the listing is printed non-interactively instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.Flags().BoolVar(&recordsJSON, "json", false, "print the listing as JSON")
	recordsCmd.Flags().StringVar(&recordsPath, "path", "icon", "field path summarized per record")
}

func runRecords(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	collection := "records"
	if len(args) > 0 {
		collection = args[0]
	}

	if recordsJSON {
		return runRecordsJSON(collection)
	}

	ctx := logging.WithComponent(app.Ctx(), "records")
	m := model.NewRecordsModel(ctx, app.Theme, model.RecordsModelConfig{
		Repo:       app.Records,
		Collection: collection,
		FieldPath:  recordsPath,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run record browser: %w", err)
	}

	rm, ok := final.(model.RecordsModel)
	if !ok {
		return fmt.Errorf("unexpected final model type %T", final)
	}
	if id := rm.Selected(); id != "" {
		fmt.Println(id)
	}
	return nil
}

// recordSummary is the JSON listing shape; the field value is omitted
// for records that do not carry one at the requested path.
type recordSummary struct {
	ID         entity.RecordID           `json:"id"`
	Collection string                    `json:"collection"`
	Value      *entity.IconConfiguration `json:"value,omitempty"`
	CreatedAt  time.Time                 `json:"createdAt"`
	UpdatedAt  time.Time                 `json:"updatedAt"`
}

func runRecordsJSON(collection string) error {
	app := GetApp()

	records, err := app.Records.ListByCollection(app.Ctx(), collection)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	summaries := make([]recordSummary, 0, len(records))
	for _, rec := range records {
		s := recordSummary{
			ID:         rec.ID,
			Collection: rec.Collection,
			CreatedAt:  rec.CreatedAt,
			UpdatedAt:  rec.UpdatedAt,
		}
		if cfg, ok := usecase.NewRecordBinding(rec, nil).Get(recordsPath); ok {
			s.Value = &cfg
		}
		summaries = append(summaries, s)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}
