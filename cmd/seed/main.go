package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"io.winapps.shetravels/internal/app"
	"io.winapps.shetravels/internal/config"
	"io.winapps.shetravels/internal/logging"
)

func main() {
	// Parse flags, falling back to SEEDER_* environment variables
	var opts config.Options
	fs := config.NewFlagSet(&opts)
	if err := config.ParseFlags(fs, &opts, os.Args[1:]); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	logger, err := logging.New(opts.Verbose)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Stop between items on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Firebase Setup Script")
	fmt.Println()

	if _, err := app.New(logger, os.Stdout).Run(ctx, &opts); err != nil {
		// Fatalw exits with status 1
		logger.Fatalw("Firebase setup failed", "error", err)
	}
}
