package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/glyphpick/internal/application/usecase"
	"github.com/bnema/glyphpick/internal/cli"
	"github.com/bnema/glyphpick/internal/cli/model"
	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/bnema/glyphpick/internal/infrastructure/config"
	"github.com/bnema/glyphpick/internal/logging"
)

var (
	pickRecordID   string
	pickCollection string
	pickPath       string
	pickLabel      string
	pickRequired   bool
	pickJSON       bool
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Edit an icon field on a record",
	Long: `Open the interactive icon field editor on one record.

Without --record a fresh draft record is created in the given
collection and saved on the first change. With --record an existing
record is loaded and its icon field edited in place.

The picker supports incremental search, page navigation and a settings
panel for size, color and stroke width. Every change is written back
to the record immediately.

Examples:
  glyphpick pick                          # New draft in "records"
  glyphpick pick --collection posts       # New draft in "posts"
  glyphpick pick --record 4f1f... --path avatar.icon
  glyphpick pick --json                   # Print the stored value on exit`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().StringVar(&pickRecordID, "record", "", "edit an existing record by ID")
	pickCmd.Flags().StringVar(&pickCollection, "collection", "records", "collection for a new draft record")
	pickCmd.Flags().StringVar(&pickPath, "path", "icon", "field path the value is stored under")
	pickCmd.Flags().StringVar(&pickLabel, "label", "Icon", "label rendered above the field")
	pickCmd.Flags().BoolVar(&pickRequired, "required", false, "mark the field as required")
	pickCmd.Flags().BoolVar(&pickJSON, "json", false, "print the stored value as JSON on exit")
}

func runPick(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	record, err := loadOrCreateRecord(app)
	if err != nil {
		return err
	}

	binding := usecase.NewRecordBinding(record, app.Records)
	editor := usecase.NewFieldEditor(binding, pickPath).
		WithMeta(usecase.FieldMeta{Label: pickLabel, Required: pickRequired})

	// Every log line from the session names the field being edited.
	ctx := logging.WithField(app.Ctx(), pickPath)

	field := model.NewIconFieldModel(ctx, app.Theme, model.IconFieldConfig{
		Editor:   editor,
		Catalog:  app.Catalog,
		Resolver: app.Resolver,
	})
	m := model.NewPickModel(ctx, app.Theme, binding, field)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Config.Picker.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)

	// Palette edits in the config file restyle the running picker.
	config.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ConfigReloadedMsg{Config: cfg})
	})
	if err := config.Watch(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("config watch unavailable")
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	pm, ok := final.(model.PickModel)
	if !ok {
		return fmt.Errorf("unexpected final model type %T", final)
	}

	if pickJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pm.Value())
	}
	// Print the record ID so the run composes with --record.
	if pm.Saved() {
		fmt.Println(pm.Record().ID)
	}
	return nil
}

// loadOrCreateRecord resolves --record against the database or starts a
// fresh draft. Drafts are not persisted until the first field change.
func loadOrCreateRecord(app *cli.App) (*entity.Record, error) {
	if pickRecordID == "" {
		return entity.NewRecord(pickCollection), nil
	}

	record, err := app.Records.FindByID(app.Ctx(), entity.RecordID(pickRecordID))
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("no record found with ID '%s'", pickRecordID)
	}
	return record, nil
}
