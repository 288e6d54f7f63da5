// internal/executor/ollama.go
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/promptlab/promptbench/internal/appconfig"
	"github.com/promptlab/promptbench/internal/logging"
	"github.com/promptlab/promptbench/internal/prompt"
)

// Ollama executes prompts against an Ollama host's /api/generate endpoint,
// non-streaming.
type Ollama struct {
	client  *http.Client
	host    appconfig.Host
	timeout time.Duration
}

// NewOllama constructs an Ollama executor configured with the application's
// request timeout.
func NewOllama(cfg *appconfig.Config) *Ollama {
	timeout := cfg.RequestTimeout()
	return &Ollama{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{ForceAttemptHTTP2: false},
		},
		host:    cfg.Host,
		timeout: timeout,
	}
}

// generateResponse mirrors the fields of Ollama's /api/generate reply that
// the benchmark consumes.
type generateResponse struct {
	Model              string `json:"model"`
	Response           string `json:"response"`
	Done               bool   `json:"done"`
	TotalDuration      int64  `json:"total_duration"`
	LoadDuration       int64  `json:"load_duration"`
	PromptEvalCount    int    `json:"prompt_eval_count"`
	PromptEvalDuration int64  `json:"prompt_eval_duration"`
	EvalCount          int    `json:"eval_count"`
	EvalDuration       int64  `json:"eval_duration"`
}

// Execute runs one prompt through /api/generate and extracts metrics.
func (o *Ollama) Execute(ctx context.Context, promptText string, technique prompt.Technique) (Result, error) {
	payload := map[string]any{
		"model":  o.host.Model,
		"prompt": promptText,
		"stream": false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, err
	}
	logging.LogRequest("BENCH->LLM", o.host.Name, o.host.Model, string(technique), body)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host.URL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := o.client.Do(req)
	if err != nil {
		return Result{Elapsed: time.Since(start)}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return Result{Elapsed: elapsed}, err
	}
	logging.LogRequest("LLM->BENCH", o.host.Name, o.host.Model, string(technique), respBody)

	if resp.StatusCode != http.StatusOK {
		return Result{Elapsed: elapsed}, fmt.Errorf("ollama: /api/generate returned %s", resp.Status)
	}

	var gen generateResponse
	if err := json.Unmarshal(respBody, &gen); err != nil {
		return Result{Elapsed: elapsed}, fmt.Errorf("ollama: decoding /api/generate response: %w", err)
	}

	result := Result{
		ResponseText:     gen.Response,
		Elapsed:          elapsed,
		PromptTokens:     gen.PromptEvalCount,
		CompletionTokens: gen.EvalCount,
	}
	// Some hosts omit token accounting; estimate so the efficiency scorer
	// works with real numbers instead of the midpoint fallback.
	if result.PromptTokens == 0 {
		result.PromptTokens = estimateTokens(promptText)
	}
	if result.CompletionTokens == 0 {
		result.CompletionTokens = estimateTokens(gen.Response)
	}
	return result, nil
}

// Ping checks the host's /api/tags endpoint.
func (o *Ollama) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.host.URL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama: /api/tags returned %s", resp.Status)
	}
	return nil
}

// Close implements ModelExecutor; the shared HTTP client needs no cleanup.
func (o *Ollama) Close() error { return nil }
