// main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"flickdeck/internal/flicks"
	"flickdeck/internal/ui"
	"flickdeck/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger. The terminal UI owns stdout, so log lines go
	// to the file sink only.
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, false)
	if err != nil {
		log.Printf("Failed to init logger: %v. Logging disabled.", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("api_base_url", config.API.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	client, err := flicks.NewClient(
		config.API.BaseURL,
		time.Duration(config.API.TimeoutSeconds)*time.Second,
		logger,
	)
	if err != nil {
		logger.Error("Failed to build API client", zap.Error(err))
		log.Fatalf("Failed to build API client: %v", err)
	}

	app := ui.NewApp(client, logger)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("UI exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "flickdeck: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Goodbye")
}
