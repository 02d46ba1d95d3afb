package config

import (
	"os"

	"github.com/promptdeck/promptdeck/pkg/provider/anthropic"
	"github.com/promptdeck/promptdeck/pkg/provider/google"
	"github.com/promptdeck/promptdeck/pkg/provider/mistral"
	"github.com/promptdeck/promptdeck/pkg/provider/openai"
)

func (cfg *Config) registerCompleters() error {
	if token := os.Getenv("OPENAI_API_KEY"); token != "" {
		completer, err := openai.NewCompleter(envModel("OPENAI_MODEL", "gpt-4o-mini"), openai.WithToken(token))

		if err != nil {
			return err
		}

		cfg.RegisterCompleter("openai", completer)
	}

	if token := os.Getenv("GEMINI_API_KEY"); token != "" {
		completer, err := google.NewCompleter(envModel("GEMINI_MODEL", "gemini-2.5-flash"), google.WithToken(token))

		if err != nil {
			return err
		}

		cfg.RegisterCompleter("gemini", completer)
	}

	if token := os.Getenv("ANTHROPIC_API_KEY"); token != "" {
		completer, err := anthropic.NewCompleter(envModel("ANTHROPIC_MODEL", "claude-sonnet-4-5"), anthropic.WithToken(token))

		if err != nil {
			return err
		}

		cfg.RegisterCompleter("anthropic", completer)
	}

	if token := os.Getenv("MISTRAL_API_KEY"); token != "" {
		completer, err := mistral.NewCompleter(envModel("MISTRAL_MODEL", "mistral-small-latest"), mistral.WithToken(token))

		if err != nil {
			return err
		}

		cfg.RegisterCompleter("mistral", completer)
	}

	return nil
}

func envModel(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}
