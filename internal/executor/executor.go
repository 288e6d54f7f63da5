// internal/executor/executor.go
// Package executor abstracts the model endpoint that runs prompts. Given a
// prompt string it returns response text plus timing and token metrics, or
// fails. All retry and timeout policy lives here, not in the orchestrator.
package executor

import (
	"context"
	"time"

	"github.com/promptlab/promptbench/internal/appconfig"
	"github.com/promptlab/promptbench/internal/prompt"
)

// Result carries one model response with its execution metrics.
type Result struct {
	ResponseText     string
	Elapsed          time.Duration
	PromptTokens     int
	CompletionTokens int
}

// ModelExecutor is the interface all model backends implement.
type ModelExecutor interface {
	// Execute runs one prompt and returns the response with metrics. The
	// technique tag is carried for request logging only.
	Execute(ctx context.Context, promptText string, technique prompt.Technique) (Result, error)
	// Ping verifies the endpoint is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the backend.
	Close() error
}

// New selects a backend for the configured host type.
func New(cfg *appconfig.Config) (ModelExecutor, error) {
	switch cfg.Host.Type {
	case appconfig.HostTypeOllama:
		return NewOllama(cfg), nil
	case appconfig.HostTypeOpenAI:
		return NewOpenAI(cfg), nil
	default:
		return nil, &appconfig.ConfigurationError{
			Field:  "host.type",
			Reason: "no executor backend for host type " + cfg.Host.Type,
		}
	}
}
