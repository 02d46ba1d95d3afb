package main

import (
	"log/slog"
	"os"

	"github.com/promptdeck/promptdeck/config"
	"github.com/promptdeck/promptdeck/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is a development convenience, not a requirement.
	godotenv.Load()

	cfg, err := config.FromEnvironment()

	if err != nil {
		return err
	}

	for _, completer := range cfg.Completers() {
		slog.Info("provider configured", "provider", completer.Name)
	}

	if len(cfg.Completers()) == 0 {
		slog.Warn("no provider API keys configured; /api/aggregate will reject requests")
	}

	s, err := server.New(cfg)

	if err != nil {
		return err
	}

	return s.ListenAndServe()
}
