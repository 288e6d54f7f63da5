package executor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptlab/promptbench/internal/appconfig"
	"github.com/promptlab/promptbench/internal/prompt"
)

func openaiTestConfig(url string) *appconfig.Config {
	cfg := appconfig.Default()
	cfg.Host = appconfig.Host{Name: "test", URL: url, Type: appconfig.HostTypeOpenAI, Model: "local-model"}
	return &cfg
}

func TestOpenAIExecuteParsesUsage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "id": "cmpl-1",
            "object": "chat.completion",
            "model": "local-model",
            "choices": [{"index": 0, "message": {"role": "assistant", "content": "42"}, "finish_reason": "stop"}],
            "usage": {"prompt_tokens": 9, "completion_tokens": 1, "total_tokens": 10}
        }`))
	}))
	defer server.Close()

	exec := NewOpenAI(openaiTestConfig(server.URL))
	result, err := exec.Execute(context.Background(), "What is 15 + 27?", prompt.ZeroShot)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.ResponseText != "42" {
		t.Fatalf("unexpected response text %q", result.ResponseText)
	}
	if result.PromptTokens != 9 || result.CompletionTokens != 1 {
		t.Fatalf("unexpected token counts: %d/%d", result.PromptTokens, result.CompletionTokens)
	}
}

func TestOpenAIExecuteSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "boom"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	exec := NewOpenAI(openaiTestConfig(server.URL))
	if _, err := exec.Execute(context.Background(), "anything", prompt.ZeroShot); err == nil {
		t.Fatal("expected error for API failure")
	}
}
