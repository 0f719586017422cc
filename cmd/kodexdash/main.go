package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/kodex/kodexdash/internal/config"
	"github.com/kodex/kodexdash/internal/database"
	"github.com/kodex/kodexdash/internal/database/repository"
	"github.com/kodex/kodexdash/internal/layout"
	"github.com/kodex/kodexdash/internal/prefs"
	"github.com/kodex/kodexdash/internal/tui"
	"github.com/kodex/kodexdash/internal/viewstate"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	if created, err := config.WriteDefault(cfg); err != nil {
		logger.Warn("write default config failed", "path", config.FilePath(), "error", err)
	} else if created {
		logger.Info("wrote default config", "path", config.FilePath())
	}

	store, installID, closeStore, err := openStore(ctx, cfg.Prefs, logger)
	if err != nil {
		log.Fatalf("preferences: %v", err)
	}
	defer closeStore()
	logger = logger.With("session", uuid.NewString(), "install", installID)

	lay, err := layout.Load(cfg.Dashboard.LayoutPath)
	if err != nil {
		log.Fatalf("layout: %v", err)
	}
	if cfg.UI.Currency != "" {
		lay.Currency = cfg.UI.Currency
	}
	logger.Info("dashboard starting",
		"backend", cfg.Prefs.Backend,
		"layout", cfg.Dashboard.LayoutPath,
		"currency", lay.Currency,
	)

	model := tui.New(ctx, tui.Options{
		Layout:       lay,
		Store:        store,
		CompactWidth: cfg.UI.CompactWidth,
		ToastTTL:     time.Duration(cfg.UI.ToastSeconds) * time.Second,
		Logger:       logger,
	})
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("program exited", "error", err)
		log.Fatalf("tui: %v", err)
	}
}

func openLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	level, err := config.ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return config.NewLogger(f, level, cfg.Format), func() { _ = f.Close() }, nil
}

// openStore returns the preference store for the configured backend. The
// sqlite backend also yields the install id; the file backend has none.
func openStore(ctx context.Context, cfg config.PrefsConfig, logger *slog.Logger) (viewstate.PreferenceStore, string, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, "", nil, err
	}
	if cfg.Backend == config.BackendFile {
		return prefs.NewFileStore(cfg.Path), "", func() {}, nil
	}

	if err := database.RunMigrations(cfg.Path); err != nil {
		return nil, "", nil, err
	}
	db, err := database.Open(cfg.Path)
	if err != nil {
		return nil, "", nil, err
	}
	id, err := database.SeedDefaults(ctx, db)
	if err != nil {
		closeDB(db)
		return nil, "", nil, err
	}
	repo := repository.NewPreferenceRepo(db)
	stored, err := repo.List(ctx)
	if err != nil {
		closeDB(db)
		return nil, "", nil, err
	}
	for _, p := range stored {
		logger.Debug("stored preference", "key", p.Key, "value", p.Value, "updated_at", p.UpdatedAt)
	}
	return repo, id, func() { closeDB(db) }, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Printf("close db: %v", err)
	}
}
