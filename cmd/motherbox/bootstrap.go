package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/motherbox/internal/catalog"
	"github.com/vmunix/motherbox/internal/config"
	"github.com/vmunix/motherbox/internal/migrations"
	"github.com/vmunix/motherbox/internal/photo"
	"github.com/vmunix/motherbox/internal/store"
)

// App bundles everything a command needs: config, logger, open database,
// and the catalog client.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Catalog *catalog.Client
	Store   *store.Store
	Photos  *photo.Processor

	db      *sql.DB
	logFile *os.File
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// bootstrap loads config, opens the log file and database, applies the
// schema, and builds the shared components. The log goes to a file, not
// stdout: the terminal belongs to the UI.
func bootstrap() (*App, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Discover()
		if err != nil {
			return nil, fmt.Errorf("no config found, run 'motherbox init' first: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		db.Close()
		logFile.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	client := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.APIKey,
		catalog.WithCacheTTL(time.Duration(cfg.Catalog.CacheTTLMinutes)*time.Minute))

	return &App{
		Config:  cfg,
		Logger:  logger,
		Catalog: client,
		Store:   store.New(db, logger),
		Photos: &photo.Processor{
			Dir:          cfg.Photos.Dir,
			MaxUploadMB:  cfg.Photos.MaxUploadMB,
			MaxDimension: cfg.Photos.MaxDimension,
			JPEGQuality:  cfg.Photos.JPEGQuality,
		},
		db:      db,
		logFile: logFile,
	}, nil
}

// Close releases the database and log file.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}
