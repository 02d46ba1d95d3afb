package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/promptdeck/promptdeck/pkg/aggregator"
	"github.com/promptdeck/promptdeck/pkg/deck"
)

func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	var req AggregateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, errors.New("prompt required"))
		return
	}

	configured := h.Completers()

	if len(configured) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("No API keys configured. Set at least one provider API key."))
		return
	}

	slog.Info("aggregating prompt", "providers", len(configured), "prompt_length", len(req.Prompt))

	completers := make([]aggregator.Completer, 0, len(configured))

	for _, c := range configured {
		completers = append(completers, aggregator.Completer{
			Name:      c.Name,
			Completer: c.Completer,
		})
	}

	results := aggregator.New(completers).Aggregate(r.Context(), req.Prompt)

	sections := make([]deck.Section, 0, len(results))

	for _, result := range results {
		sections = append(sections, deck.Section{
			Title: result.Provider,
			Body:  result.Text,
		})
	}

	document, err := deck.Render(deck.Build(req.Prompt, sections))

	if err != nil {
		slog.Error("deck rendering failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, http.StatusOK, AggregateResponse{
		OK: true,

		Document: base64.StdEncoding.EncodeToString(document),
		FileName: deck.Filename(time.Now()),
	})
}
