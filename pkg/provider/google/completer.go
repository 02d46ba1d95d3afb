package google

import (
	"context"
	"encoding/json"

	"github.com/promptdeck/promptdeck/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = genai.Ptr(*options.Temperature)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, convertMessages(messages), config)

	if err != nil {
		return nil, err
	}

	text := firstPartText(resp)

	// Successful calls without the expected part fall back to the raw body
	if text == "" {
		data, err := json.MarshalIndent(resp, "", "  ")

		if err != nil {
			return nil, err
		}

		text = string(data)
	}

	return &provider.Completion{
		ID:    uuid.NewString(),
		Model: c.model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent(text)},
		},

		Usage: toUsage(resp.UsageMetadata),
	}, nil
}

func convertMessages(input []provider.Message) []*genai.Content {
	var result []*genai.Content

	for _, m := range input {
		parts := []*genai.Part{
			genai.NewPartFromText(m.Text()),
		}

		switch m.Role {
		case provider.MessageRoleUser:
			result = append(result, genai.NewContentFromParts(parts, genai.RoleUser))

		case provider.MessageRoleAssistant:
			result = append(result, genai.NewContentFromParts(parts, genai.RoleModel))
		}
	}

	return result
}

func firstPartText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	return candidate.Content.Parts[0].Text
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}
