package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momentumos/momentum/internal/client/api"
	"github.com/momentumos/momentum/internal/client/auth"
	"github.com/momentumos/momentum/internal/client/cli"
	"github.com/momentumos/momentum/internal/client/data"
	"github.com/momentumos/momentum/internal/client/iocli"
	"github.com/momentumos/momentum/internal/client/local"
	"github.com/momentumos/momentum/internal/client/storage/boltdb"
	"github.com/momentumos/momentum/internal/client/sync"
	"github.com/momentumos/momentum/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, cfg.QueueDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open local database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close local database", "error", err)
		}
	}()

	mirror, err := local.New(ctx, cfg.MirrorDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open local mirror: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := mirror.Close(); err != nil {
			logger.Error("failed to close local mirror", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.APIURL, cfg.APIKey)
	syncService := sync.NewService(apiClient, boltStorage, logger)
	dispatcher := sync.NewDispatcher(syncService, logger)
	dataService := data.NewService(apiClient, mirror, dispatcher, logger)
	authService := auth.NewService(apiClient, boltStorage, logger)
	probe := sync.NewProbe(apiClient, syncService, 10*time.Second, logger)

	c := cli.New(iocli.NewStdio(), authService, dataService, syncService, probe)
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Momentum Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
