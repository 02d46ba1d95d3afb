// Package aggregator fans a single prompt out to every configured provider
// and collects one result per provider, in registration order. Provider
// failures are folded into the result text so one slow or broken vendor
// never fails the request.
package aggregator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/promptdeck/promptdeck/pkg/provider"
)

// DefaultTimeout bounds a single provider call. The timeout outcome is
// reported through the same error-text channel as any other failure.
const DefaultTimeout = 2 * time.Minute

const defaultMaxTokens = 2048

type Completer struct {
	Name      string
	Completer provider.Completer
}

type Result struct {
	Provider string
	Text     string
}

type Service struct {
	completers []Completer

	timeout   time.Duration
	maxTokens int
}

type Option func(*Service)

func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.timeout = timeout
	}
}

func WithMaxTokens(tokens int) Option {
	return func(s *Service) {
		s.maxTokens = tokens
	}
}

func New(completers []Completer, options ...Option) *Service {
	s := &Service{
		completers: completers,

		timeout:   DefaultTimeout,
		maxTokens: defaultMaxTokens,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Aggregate issues one call per configured provider and waits for all of
// them to settle. Every attempted provider yields exactly one Result.
func (s *Service) Aggregate(ctx context.Context, prompt string) []Result {
	results := make([]Result, len(s.completers))

	var wg sync.WaitGroup

	for i, completer := range s.completers {
		wg.Add(1)

		go func(idx int, c Completer) {
			defer wg.Done()

			results[idx] = Result{
				Provider: c.Name,
				Text:     s.generate(ctx, c, prompt),
			}
		}(i, completer)
	}

	wg.Wait()

	return results
}

func (s *Service) generate(ctx context.Context, c Completer, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()

	messages := []provider.Message{
		provider.UserMessage(prompt),
	}

	options := &provider.CompleteOptions{
		MaxTokens: &s.maxTokens,
	}

	completion, err := c.Completer.Complete(ctx, messages, options)

	if err != nil {
		slog.Warn("provider call failed", "provider", c.Name, "duration", time.Since(started), "error", err)
		return "Error: " + err.Error()
	}

	slog.Info("provider call completed", "provider", c.Name, "duration", time.Since(started))

	return completion.Message.Text()
}
