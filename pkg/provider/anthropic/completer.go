package anthropic

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/promptdeck/promptdeck/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

// Messages API rejects requests without max_tokens.
const defaultMaxTokens = 2048

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: defaultMaxTokens,

		Messages: convertMessages(messages),
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	message, err := c.messages.New(ctx, req)

	if err != nil {
		return nil, err
	}

	var text string

	for _, block := range message.Content {
		if block, ok := block.AsAny().(anthropic.TextBlock); ok {
			text = block.Text
			break
		}
	}

	// Successful calls without a text block fall back to the raw body
	if text == "" {
		text = prettyJSON(message.RawJSON())
	}

	return &provider.Completion{
		ID:    message.ID,
		Model: c.model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent(text)},
		},

		Usage: toUsage(message.Usage),
	}, nil
}

func convertMessages(input []provider.Message) []anthropic.MessageParam {
	var result []anthropic.MessageParam

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleUser:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text())))

		case provider.MessageRoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text())))
		}
	}

	return result
}

func toUsage(usage anthropic.Usage) *provider.Usage {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.InputTokens),
		OutputTokens: int(usage.OutputTokens),
	}
}

func prettyJSON(raw string) string {
	var buf bytes.Buffer

	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return raw
	}

	return buf.String()
}
