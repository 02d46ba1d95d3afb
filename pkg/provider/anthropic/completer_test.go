package anthropic_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptdeck/promptdeck/pkg/provider"
	"github.com/promptdeck/promptdeck/pkg/provider/anthropic"

	"github.com/stretchr/testify/require"
)

func messageBody(text string) map[string]any {
	content := []map[string]any{}

	if text != "" {
		content = append(content, map[string]any{
			"type": "text",
			"text": text,
		})
	}

	return map[string]any{
		"id":          "msg_01",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-sonnet-4-5",
		"content":     content,
		"stop_reason": "end_turn",
		"usage": map[string]any{
			"input_tokens":  3,
			"output_tokens": 5,
		},
	}
}

func TestCompleteExtractsFirstTextBlock(t *testing.T) {
	var gotKey, gotVersion string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotVersion = r.Header.Get("Anthropic-Version")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messageBody("Hello!"))
	}))
	defer srv.Close()

	completer, err := anthropic.NewCompleter("claude-sonnet-4-5", anthropic.WithToken("test-key"), anthropic.WithURL(srv.URL))
	require.NoError(t, err)

	tokens := 256
	completion, err := completer.Complete(t.Context(), []provider.Message{provider.UserMessage("Explain 5G")}, &provider.CompleteOptions{MaxTokens: &tokens})
	require.NoError(t, err)

	require.Equal(t, "Hello!", completion.Message.Text())
	require.Equal(t, "msg_01", completion.ID)
	require.Equal(t, 3, completion.Usage.InputTokens)
	require.Equal(t, 5, completion.Usage.OutputTokens)

	require.Equal(t, "test-key", gotKey, "credential travels in the vendor header, not a bearer token")
	require.NotEmpty(t, gotVersion)
	require.EqualValues(t, 256, gotBody["max_tokens"])
}

func TestCompleteFallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messageBody(""))
	}))
	defer srv.Close()

	completer, err := anthropic.NewCompleter("claude-sonnet-4-5", anthropic.WithToken("test-key"), anthropic.WithURL(srv.URL))
	require.NoError(t, err)

	completion, err := completer.Complete(t.Context(), []provider.Message{provider.UserMessage("p")}, nil)
	require.NoError(t, err)

	require.Contains(t, completion.Message.Text(), "msg_01", "missing text block falls back to the decoded body")
}
