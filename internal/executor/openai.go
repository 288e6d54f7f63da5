// internal/executor/openai.go
package executor

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/promptlab/promptbench/internal/appconfig"
	"github.com/promptlab/promptbench/internal/logging"
	"github.com/promptlab/promptbench/internal/prompt"
)

// OpenAI executes prompts against any OpenAI-compatible chat-completions
// endpoint (vLLM, llama.cpp server, LM Studio, the real thing). The host
// URL must include the API prefix, e.g. http://localhost:8000/v1.
type OpenAI struct {
	client  *openai.Client
	host    appconfig.Host
	timeout time.Duration
}

// NewOpenAI constructs an OpenAI-compatible executor for the configured host.
func NewOpenAI(cfg *appconfig.Config) *OpenAI {
	apiKey := cfg.Host.APIKey
	if apiKey == "" {
		// Local OpenAI-compatible servers accept any key.
		apiKey = "not-needed"
	}
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = cfg.Host.URL

	return &OpenAI{
		client:  openai.NewClientWithConfig(clientConfig),
		host:    cfg.Host,
		timeout: cfg.RequestTimeout(),
	}
}

// Execute runs one prompt as a single-turn chat completion.
func (o *OpenAI) Execute(ctx context.Context, promptText string, technique prompt.Technique) (Result, error) {
	logging.LogRequest("BENCH->LLM", o.host.Name, o.host.Model, string(technique), promptText)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.host.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: promptText},
		},
	})
	elapsed := time.Since(start)
	if err != nil {
		return Result{Elapsed: elapsed}, fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{Elapsed: elapsed}, fmt.Errorf("openai: response contained no choices")
	}

	content := resp.Choices[0].Message.Content
	logging.LogRequest("LLM->BENCH", o.host.Name, o.host.Model, string(technique), content)

	result := Result{
		ResponseText:     content,
		Elapsed:          elapsed,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}
	if result.PromptTokens == 0 {
		result.PromptTokens = estimateTokens(promptText)
	}
	if result.CompletionTokens == 0 {
		result.CompletionTokens = estimateTokens(content)
	}
	return result, nil
}

// Ping lists models to verify the endpoint is reachable.
func (o *OpenAI) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := o.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai: list models: %w", err)
	}
	return nil
}

// Close implements ModelExecutor.
func (o *OpenAI) Close() error { return nil }
