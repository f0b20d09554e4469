package app

import (
	"log/slog"

	"github.com/billie-coop/scaler/internal/config"
	"github.com/billie-coop/scaler/internal/settings"
	"github.com/billie-coop/scaler/internal/tui/events"
)

// App holds all the core services and business logic
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Core services
	Settings  *SettingsService
	Clipboard *ClipboardService

	// Event system
	EventBroker *events.Broker
}

// New creates a new app with all services initialized. Nothing is read from
// disk until the overlay is first shown.
func New(cfg *config.Config, eventBroker *events.Broker, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	schema, err := cfg.Schema()
	if err != nil {
		return nil, err
	}

	store := settings.NewStore(cfg.SettingsPath, schema, logger)

	return &App{
		Config:      cfg,
		Logger:      logger,
		Settings:    NewSettingsService(store, eventBroker),
		Clipboard:   NewClipboardService(eventBroker),
		EventBroker: eventBroker,
	}, nil
}
