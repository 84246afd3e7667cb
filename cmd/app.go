package cmd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/internal/database"
	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/diagnostics"
	"github.com/killallgit/minutes-api/internal/services/enrichment"
	"github.com/killallgit/minutes-api/internal/services/gemini"
	"github.com/killallgit/minutes-api/internal/services/transcription"
	"github.com/killallgit/minutes-api/internal/services/workspace"
	"github.com/killallgit/minutes-api/pkg/config"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// application holds the services shared by the commands
type application struct {
	db          *database.DB
	diagnostics diagnostics.Service
	catalog     models.Catalog
	workspaces  workspace.Service
	logger      *zap.Logger
}

// newApplication wires the services described by cfg
func newApplication(cfg *config.Config, log *zap.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("configuration is not loaded")
	}
	if log == nil {
		log = zap.NewNop()
	}

	app := &application{
		catalog: catalogFromConfig(cfg.Models),
		logger:  log,
	}

	var recorder diagnostics.Recorder = diagnostics.NopRecorder{}
	if cfg.DiagnosticsActive() {
		svc, db, err := openDiagnostics(cfg, log)
		if err != nil {
			return nil, err
		}
		app.db = db
		app.diagnostics = svc
		recorder = svc
	}

	client := gemini.NewClient(gemini.Config{
		BaseURL:           cfg.Gemini.BaseURL,
		Timeout:           cfg.Gemini.Timeout,
		MaxRetries:        cfg.Gemini.MaxRetries,
		RequestsPerSecond: cfg.Gemini.RequestsPerSecond,
		Burst:             cfg.Gemini.Burst,
		UserAgent:         "minutes-api/" + Version,
	}, log.Named("gemini"))

	transcriber := transcription.NewService(client, transcript.NewParser(log.Named("parser")), app.catalog, recorder, log.Named("transcription"))
	enricher := enrichment.NewService(client, app.catalog, recorder, log.Named("enrichment"))

	app.workspaces = workspace.NewService(transcriber, enricher, app.catalog, workspace.Config{
		TTL:              cfg.Workspace.TTL,
		CleanupInterval:  cfg.Workspace.CleanupInterval,
		MaxWorkspaces:    cfg.Workspace.MaxWorkspaces,
		OperationTimeout: cfg.Workspace.OperationTimeout,
		MaxAudioBytes:    cfg.Workspace.MaxAudioBytes,
		DefaultAPIKey:    cfg.Gemini.APIKey,
	}, log.Named("workspace"))

	return app, nil
}

// openDiagnostics opens the sqlite store and applies its schema
func openDiagnostics(cfg *config.Config, log *zap.Logger) (diagnostics.Service, *database.DB, error) {
	if cfg.Database.Path == "" {
		return nil, nil, errors.New("database.path is not configured")
	}
	if log == nil {
		log = zap.NewNop()
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose, log.Named("database"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.AutoMigrate(&models.Diagnostic{}); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	svc := diagnostics.NewService(diagnostics.NewRepository(db.DB), log.Named("diagnostics"))
	return svc, db, nil
}

// Close waits for background operations and releases resources
func (a *application) Close() {
	if a.workspaces != nil {
		a.workspaces.Wait()
		a.workspaces.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
}

func catalogFromConfig(cfg config.ModelsConfig) models.Catalog {
	catalog := models.Catalog{Default: cfg.Default}
	for _, m := range cfg.Available {
		catalog.Models = append(catalog.Models, models.AIModel{ID: m.ID, Name: m.Name})
	}
	return catalog
}
