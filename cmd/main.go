package main

import (
	"context"
	"os"

	"github.com/orgball2608/serialcmd/internal/app"
	"github.com/orgball2608/serialcmd/pkg/config"
	"github.com/orgball2608/serialcmd/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{})

	cfg, err := config.New()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	application := fx.New(
		fx.Logger(log),
		app.New(cfg),
	)

	// Start the application
	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Wait for an interrupt signal or the command source running dry
	<-application.Done()

	// Gracefully shutdown the application
	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
