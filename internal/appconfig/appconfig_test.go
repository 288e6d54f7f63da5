// internal/appconfig/appconfig_test.go
package appconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeTempConfig(t, `{
        "host": {
            "name": "workstation",
            "url": "http://localhost:11434",
            "type": "ollama",
            "model": "llama3"
        },
        "weights": {"accuracy": 0.5, "completeness": 0.3, "efficiency": 0.2}
    }`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.Host.Model != "llama3" {
		t.Fatalf("expected model llama3, got %q", cfg.Host.Model)
	}
	if cfg.TimeoutSeconds != 120 {
		t.Fatalf("expected default timeout of 120 seconds, got %d", cfg.TimeoutSeconds)
	}
	if cfg.RequestTimeout() != 120*time.Second {
		t.Fatalf("expected default request timeout of 120s, got %v", cfg.RequestTimeout())
	}
	if cfg.LogFilePath() != "promptbench.log" {
		t.Fatalf("expected default log file, got %q", cfg.LogFilePath())
	}
	if cfg.ResultsPath() != "benchData/runs" {
		t.Fatalf("expected default results dir, got %q", cfg.ResultsPath())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{ "host": [`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON config")
	}
}

func TestLoadUnknownHostType(t *testing.T) {
	path := writeTempConfig(t, `{
        "host": {"name": "x", "url": "http://x", "type": "grpc", "model": "m"}
    }`)
	_, err := Load(path)
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cerr.Field != "host.type" {
		t.Fatalf("expected host.type field, got %q", cerr.Field)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for nonexistent explicit config path")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	sum := cfg.Weights.Accuracy + cfg.Weights.Completeness + cfg.Weights.Efficiency
	if sum != 1.0 {
		t.Fatalf("default weights should sum to 1.0, got %v", sum)
	}
}
