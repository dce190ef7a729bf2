package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("WNHOME", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Embedding.Provider != "genai" {
		t.Errorf("provider = %q", cfg.Embedding.Provider)
	}
	if cfg.Assessment.LogFile != "cognitive_log.csv" {
		t.Errorf("log file = %q", cfg.Assessment.LogFile)
	}
	if cfg.Assessment.Timezone != "Asia/Seoul" {
		t.Errorf("timezone = %q", cfg.Assessment.Timezone)
	}
	if cfg.MemorizeDelay() != 5*time.Second {
		t.Errorf("memorize delay = %v", cfg.MemorizeDelay())
	}
	if cfg.LLMTimeout() != 30*time.Second {
		t.Errorf("llm timeout = %v", cfg.LLMTimeout())
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "cogtest.yaml")
	content := `
embedding:
  provider: ollama
  ollama_model: nomic-embed-text
llm:
  api_key: file-key
  timeout: 10s
assessment:
  log_file: /tmp/scores.csv
  timezone: UTC
  memorize_delay: 2s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Embedding.Provider != "ollama" {
		t.Errorf("provider = %q", cfg.Embedding.Provider)
	}
	if cfg.Embedding.OllamaModel != "nomic-embed-text" {
		t.Errorf("ollama model = %q", cfg.Embedding.OllamaModel)
	}
	// Untouched keys keep their defaults.
	if cfg.Embedding.OllamaEndpoint != "http://localhost:11434" {
		t.Errorf("ollama endpoint = %q", cfg.Embedding.OllamaEndpoint)
	}
	if cfg.LLM.APIKey != "file-key" {
		t.Errorf("api key = %q", cfg.LLM.APIKey)
	}
	if cfg.LLMTimeout() != 10*time.Second {
		t.Errorf("timeout = %v", cfg.LLMTimeout())
	}
	if cfg.Assessment.LogFile != "/tmp/scores.csv" {
		t.Errorf("log file = %q", cfg.Assessment.LogFile)
	}
	if cfg.MemorizeDelay() != 2*time.Second {
		t.Errorf("memorize delay = %v", cfg.MemorizeDelay())
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	if loc != time.UTC {
		t.Errorf("location = %v", loc)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("WNHOME", "/opt/wordnet/dict")

	path := filepath.Join(t.TempDir(), "cogtest.yaml")
	if err := os.WriteFile(path, []byte("llm:\n  api_key: file-key\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LLM.APIKey != "env-key" {
		t.Errorf("env key should win over file: %q", cfg.LLM.APIKey)
	}
	if cfg.Embedding.GenAIAPIKey != "env-key" {
		t.Errorf("embedding key should follow env: %q", cfg.Embedding.GenAIAPIKey)
	}
	if cfg.Assessment.WordNetDir != "/opt/wordnet/dict" {
		t.Errorf("wordnet dir = %q", cfg.Assessment.WordNetDir)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("embedding: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assessment.MemorizeDelay = "soon"
	cfg.LLM.Timeout = "-1s"
	if cfg.MemorizeDelay() != 5*time.Second {
		t.Errorf("bad delay should fall back: %v", cfg.MemorizeDelay())
	}
	if cfg.LLMTimeout() != 30*time.Second {
		t.Errorf("bad timeout should fall back: %v", cfg.LLMTimeout())
	}
}

func TestBadTimezone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assessment.Timezone = "Mars/Olympus"
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
