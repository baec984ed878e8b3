package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChatSendsCompletionParameters(t *testing.T) {
	var got chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		// raw body check so omitted fields can't hide behind zero values
		var raw map[string]any
		json.Unmarshal(body, &raw)
		if _, ok := raw["temperature"]; !ok {
			t.Error("request is missing temperature")
		}
		if _, ok := raw["max_tokens"]; !ok {
			t.Error("request is missing max_tokens")
		}

		w.Write([]byte(`{"choices":[{"message":{"content":"hello there"}}]}`))
	}))
	defer server.Close()

	client := newOpenAICompatible("test-key", server.URL, "openai/gpt-oss-20b")

	response, err := client.Chat(context.Background(), "persona", []Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}

	if response != "hello there" {
		t.Errorf("expected 'hello there', got %q", response)
	}

	if got.Temperature != defaultTemperature {
		t.Errorf("expected temperature %v, got %v", defaultTemperature, got.Temperature)
	}

	if got.MaxTokens != defaultMaxTokens {
		t.Errorf("expected max_tokens %d, got %d", defaultMaxTokens, got.MaxTokens)
	}

	if got.Model != "openai/gpt-oss-20b" {
		t.Errorf("unexpected model %q", got.Model)
	}

	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "hi" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestChatSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := newOpenAICompatible("test-key", server.URL, "m")

	if _, err := client.Chat(context.Background(), "", []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}
