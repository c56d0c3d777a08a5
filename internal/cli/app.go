// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/glyphpick/internal/application/port"
	"github.com/bnema/glyphpick/internal/cli/styles"
	"github.com/bnema/glyphpick/internal/domain/build"
	"github.com/bnema/glyphpick/internal/domain/icon"
	"github.com/bnema/glyphpick/internal/domain/repository"
	"github.com/bnema/glyphpick/internal/infrastructure/config"
	"github.com/bnema/glyphpick/internal/infrastructure/iconres"
	"github.com/bnema/glyphpick/internal/infrastructure/lucide"
	"github.com/bnema/glyphpick/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/glyphpick/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	db        *sql.DB
	Records   repository.RecordRepository
	Catalog   *icon.Catalog
	Resolver  port.IconResolver

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	// Load config
	cfg := loadConfig()

	// Create theme from config
	theme := styles.NewTheme(cfg)

	// GLYPHPICK_LOG_LEVEL and GLYPHPICK_LOG_FORMAT are bound through the
	// config manager, so cfg already reflects any env overrides.
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	// Open database connection
	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Create repositories
	records := sqlite.NewRecordRepository(db)

	// Build the icon catalog and resolution cache from the bundled registry.
	source := lucide.NewSource()
	catalog := icon.NewCatalog(source.Names())
	resolver := iconres.NewResolver(source)
	resolver.Warm(ctx, cfg.Picker.WarmIcons)

	logger.Debug().
		Str("db_path", cfg.Database.Path).
		Int("catalog_size", catalog.Len()).
		Msg("cli dependencies ready")

	return &App{
		Config:   cfg,
		Theme:    theme,
		db:       db,
		Records:  records,
		Catalog:  catalog,
		Resolver: resolver,
		ctx:      ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. The global
// manager is used so commands can attach watchers afterwards.
func loadConfig() *config.Config {
	if err := config.Init(); err != nil {
		// Return default config if loading fails
		return config.DefaultConfig()
	}
	return config.Get()
}
