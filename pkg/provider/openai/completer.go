package openai

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/promptdeck/promptdeck/pkg/provider"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	completions openai.ChatCompletionService
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),

		Messages: convertMessages(messages),
	}

	if options.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	completion, err := c.completions.New(ctx, req)

	if err != nil {
		return nil, err
	}

	var text string

	if len(completion.Choices) > 0 {
		text = completion.Choices[0].Message.Content
	}

	// Successful calls without the expected text field fall back to the raw body
	if text == "" {
		text = prettyJSON(completion.RawJSON())
	}

	return &provider.Completion{
		ID:    completion.ID,
		Model: c.model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent(text)},
		},

		Usage: toUsage(completion.Usage),
	}, nil
}

func convertMessages(input []provider.Message) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleUser:
			result = append(result, openai.UserMessage(m.Text()))

		case provider.MessageRoleAssistant:
			result = append(result, openai.AssistantMessage(m.Text()))
		}
	}

	return result
}

func toUsage(usage openai.CompletionUsage) *provider.Usage {
	if usage.TotalTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.PromptTokens),
		OutputTokens: int(usage.CompletionTokens),
	}
}

func prettyJSON(raw string) string {
	var buf bytes.Buffer

	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return raw
	}

	return buf.String()
}
