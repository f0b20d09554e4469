// Package main is the entry point for the scaler overlay.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/billie-coop/scaler/internal/app"
	"github.com/billie-coop/scaler/internal/config"
	"github.com/billie-coop/scaler/internal/logging"
	"github.com/billie-coop/scaler/internal/tui"
	"github.com/billie-coop/scaler/internal/tui/events"
	"github.com/billie-coop/scaler/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the scaler config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfgManager := config.NewManager(configPath)
	if err := cfgManager.Load(); err != nil {
		return err
	}
	cfg := cfgManager.Get()

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	styles.SetDefaultManager(styles.NewManager(cfg.Theme))

	eventBroker := events.NewBroker()
	defer eventBroker.Clear()

	appInstance, err := app.New(cfg, eventBroker, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "config", configPath, "settings", cfg.SettingsPath, "variant", cfg.Variant)

	model := tui.New(appInstance, eventBroker)
	model.OnThemeChange(func(name string) {
		if err := cfgManager.Set("theme", name); err != nil {
			logger.Warn("could not store theme", "theme", name, "error", err)
		}
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running overlay: %w", err)
	}
	return nil
}
