// Package config holds all cogtest configuration: one YAML file with
// per-concern sections, defaults when the file is absent, and environment
// overrides for secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"cogtest/internal/embedding"
)

// Config is the root configuration.
type Config struct {
	// Embedding selects the similarity backend.
	Embedding embedding.Config `yaml:"embedding"`

	// LLM configures the generative backends (feedback text, OCR vision).
	LLM LLMConfig `yaml:"llm"`

	// Assessment configures the test itself.
	Assessment AssessmentConfig `yaml:"assessment"`
}

// LLMConfig configures the Gemini text and vision models.
type LLMConfig struct {
	APIKey    string `yaml:"api_key"`
	TextModel string `yaml:"text_model"` // default gemini-2.5-flash, used for feedback and OCR
	Timeout   string `yaml:"timeout"`    // feedback call budget, default 30s
}

// AssessmentConfig configures the interactive test and the log.
type AssessmentConfig struct {
	LogFile       string `yaml:"log_file"`       // default cognitive_log.csv in the working directory
	Timezone      string `yaml:"timezone"`       // default Asia/Seoul
	MemorizeDelay string `yaml:"memorize_delay"` // default 5s
	WordNetDir    string `yaml:"wordnet_dir"`    // WordNet "dict" directory for the animal question
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Embedding: embedding.Config{
			Provider:       "genai",
			GenAIModel:     "gemini-embedding-001",
			OllamaEndpoint: "http://localhost:11434",
			OllamaModel:    "embeddinggemma",
		},
		LLM: LLMConfig{
			TextModel: "gemini-2.5-flash",
			Timeout:   "30s",
		},
		Assessment: AssessmentConfig{
			LogFile:       "cognitive_log.csv",
			Timezone:      "Asia/Seoul",
			MemorizeDelay: "5s",
			WordNetDir:    "/usr/share/wordnet",
		},
	}
}

// Load reads configuration from a YAML file. A missing file returns the
// defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.Embedding.GenAIAPIKey = key
	}
	if dir := os.Getenv("WNHOME"); dir != "" {
		c.Assessment.WordNetDir = dir
	}
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Assessment.Timezone)
	if err != nil {
		return nil, fmt.Errorf("bad timezone %q: %w", c.Assessment.Timezone, err)
	}
	return loc, nil
}

// MemorizeDelay parses the memorization window, falling back to 5s on a bad
// or empty value.
func (c *Config) MemorizeDelay() time.Duration {
	d, err := time.ParseDuration(c.Assessment.MemorizeDelay)
	if err != nil || d < 0 {
		return 5 * time.Second
	}
	return d
}

// LLMTimeout parses the feedback call budget, falling back to 30s.
func (c *Config) LLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
