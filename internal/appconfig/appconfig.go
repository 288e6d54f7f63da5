// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRequestTimeout is the per-call timeout applied to model executions.
	defaultRequestTimeout = 120 * time.Second
	// defaultResultsDir is where benchmark runs are persisted as JSONL.
	defaultResultsDir = "benchData/runs"
)

// Host types understood by the executor factory.
const (
	HostTypeOllama = "ollama"
	HostTypeOpenAI = "openai"
)

// ConfigurationError reports invalid configuration. It always fails fast,
// before any model call is made.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// Config represents the top-level application configuration.
type Config struct {
	Host           Host    `json:"host"`
	Weights        Weights `json:"weights"`
	Debug          bool    `json:"debug"`
	NoTUI          bool    `json:"noTui"`
	TimeoutSeconds int     `json:"timeout,omitempty"`
	DatasetPath    string  `json:"dataset,omitempty"`
	ResultsDir     string  `json:"resultsDir,omitempty"`
	LogFile        string  `json:"logFile,omitempty"`
	ConfigPath     string  `json:"-"`
}

// Host describes the single model endpoint that executes prompts.
type Host struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Type   string `json:"type"`
	Model  string `json:"model"`
	APIKey string `json:"apiKey,omitempty"`
}

// Weights holds the top-level metric weights as configured. They are
// validated when handed to the orchestrator, not here.
type Weights struct {
	Accuracy     float64 `json:"accuracy"`
	Completeness float64 `json:"completeness"`
	Efficiency   float64 `json:"efficiency"`
}

// Default returns a configuration that runs against a local Ollama host
// with the standard 0.5/0.3/0.2 metric weighting.
func Default() Config {
	return Config{
		Host: Host{
			Name:  "local",
			URL:   "http://localhost:11434",
			Type:  HostTypeOllama,
			Model: "llama3",
		},
		Weights: Weights{
			Accuracy:     0.5,
			Completeness: 0.3,
			Efficiency:   0.2,
		},
		TimeoutSeconds: int(defaultRequestTimeout.Seconds()),
	}
}

// RequestTimeout returns the timeout duration for model calls, falling back
// to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the application log file, applying a
// default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "promptbench.log"
}

// ResultsPath returns the directory for persisted benchmark runs.
func (c Config) ResultsPath() string {
	if dir := strings.TrimSpace(c.ResultsDir); dir != "" {
		return dir
	}
	return defaultResultsDir
}

// Validate checks the host section. Weight validation lives with the
// orchestrator's WeightConfig so it also covers per-run overrides.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Host.URL) == "" {
		return &ConfigurationError{Field: "host.url", Reason: "must not be empty"}
	}
	switch c.Host.Type {
	case HostTypeOllama, HostTypeOpenAI:
	default:
		return &ConfigurationError{
			Field:  "host.type",
			Reason: fmt.Sprintf("unknown host type %q (expected %q or %q)", c.Host.Type, HostTypeOllama, HostTypeOpenAI),
		}
	}
	if strings.TrimSpace(c.Host.Model) == "" {
		return &ConfigurationError{Field: "host.model", Reason: "must not be empty"}
	}
	return nil
}

// Load reads the application configuration from the specified path. A
// missing file at the default path yields the default configuration.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		if verr := config.Validate(); verr != nil {
			return Config{}, verr
		}
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	config := Default()
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultRequestTimeout.Seconds())
	}

	return config, nil
}
