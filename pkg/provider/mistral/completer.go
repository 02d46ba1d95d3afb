// Package mistral exposes La Plateforme through its OpenAI-compatible API.
package mistral

import (
	"github.com/promptdeck/promptdeck/pkg/provider/openai"
)

type Completer = openai.Completer

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		options: []openai.Option{
			openai.WithURL("https://api.mistral.ai/v1/"),
		},
	}

	for _, option := range options {
		option(cfg)
	}

	return openai.NewCompleter(model, cfg.options...)
}
