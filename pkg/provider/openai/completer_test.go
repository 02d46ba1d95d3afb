package openai_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptdeck/promptdeck/pkg/provider"
	"github.com/promptdeck/promptdeck/pkg/provider/openai"

	"github.com/stretchr/testify/require"
)

func completionBody(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     5,
			"completion_tokens": 7,
			"total_tokens":      12,
		},
	}
}

func TestCompleteExtractsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("Hello!"))
	}))
	defer srv.Close()

	completer, err := openai.NewCompleter("gpt-4o-mini", openai.WithToken("test-key"), openai.WithURL(srv.URL))
	require.NoError(t, err)

	tokens := 256
	completion, err := completer.Complete(t.Context(), []provider.Message{provider.UserMessage("Explain 5G")}, &provider.CompleteOptions{MaxTokens: &tokens})
	require.NoError(t, err)

	require.Equal(t, "Hello!", completion.Message.Text())
	require.Equal(t, "chatcmpl-123", completion.ID)
	require.Equal(t, 5, completion.Usage.InputTokens)
	require.Equal(t, 7, completion.Usage.OutputTokens)

	require.Equal(t, "Bearer test-key", gotAuth)
	require.EqualValues(t, 256, gotBody["max_tokens"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 1)
	require.Equal(t, "user", messages[0].(map[string]any)["role"])
}

func TestCompleteFallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(""))
	}))
	defer srv.Close()

	completer, err := openai.NewCompleter("gpt-4o-mini", openai.WithToken("test-key"), openai.WithURL(srv.URL))
	require.NoError(t, err)

	completion, err := completer.Complete(t.Context(), []provider.Message{provider.UserMessage("p")}, nil)
	require.NoError(t, err)

	text := completion.Message.Text()
	require.Contains(t, text, "chat.completion", "missing text falls back to the decoded body")
	require.Contains(t, text, "\n", "fallback body is pretty-printed")
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid model","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	completer, err := openai.NewCompleter("bogus", openai.WithToken("test-key"), openai.WithURL(srv.URL))
	require.NoError(t, err)

	_, err = completer.Complete(t.Context(), []provider.Message{provider.UserMessage("p")}, nil)
	require.Error(t, err)
}
