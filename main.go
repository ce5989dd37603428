package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"timeform/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	repo, err := NewRepo(cfg.DBPath)
	if err != nil {
		logger.Error("failed to initialize repository", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	app := NewApp(repo, logger, os.Stdin, os.Stdout)
	rootCmd := SetupCommands(app)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrInvalidRows) {
			fmt.Fprintln(os.Stderr, err)
		}
		repo.Close()
		os.Exit(1)
	}
}
