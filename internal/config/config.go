// Package config provides configuration loading for noteflow.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the pipeline and its CLI harness.
type Config struct {
	Logging  LoggingConfig  `koanf:"logging"`
	LLM      LLMConfig      `koanf:"llm"`
	Classify ClassifyConfig `koanf:"classify"`
	Extract  ExtractConfig  `koanf:"extract"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or console
}

// LLMConfig selects and configures the completion provider.
type LLMConfig struct {
	Provider  string                    `koanf:"provider"` // disabled, anthropic, openai
	Providers map[string]ProviderConfig `koanf:"providers"`
}

// ProviderConfig holds provider-specific settings.
type ProviderConfig struct {
	Model     string   `koanf:"model"`
	APIKey    Secret   `koanf:"api_key"`
	BaseURL   string   `koanf:"base_url"`
	MaxTokens int      `koanf:"max_tokens"`
	Timeout   Duration `koanf:"timeout"`
}

// ClassifyConfig tunes the classifier.
type ClassifyConfig struct {
	UseLLM        bool     `koanf:"use_llm"`
	LLMTimeout    Duration `koanf:"llm_timeout"`
	PromptVersion string   `koanf:"prompt_version"`
}

// ExtractConfig tunes the extraction engines.
type ExtractConfig struct {
	UseLLM     bool     `koanf:"use_llm"`
	LLMTimeout Duration `koanf:"llm_timeout"`
}

// Default returns a Config with production-ready defaults. The LLM
// provider starts disabled; heuristics alone always produce a result.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		LLM: LLMConfig{
			Provider:  "disabled",
			Providers: map[string]ProviderConfig{},
		},
		Classify: ClassifyConfig{
			UseLLM:        true,
			LLMTimeout:    Duration(10 * time.Second),
			PromptVersion: "v1",
		},
		Extract: ExtractConfig{
			UseLLM:     true,
			LLMTimeout: Duration(15 * time.Second),
		},
	}
}

// Validate checks invariants that loading cannot express.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	switch c.LLM.Provider {
	case "disabled", "anthropic", "openai":
	default:
		return fmt.Errorf("llm.provider must be disabled, anthropic, or openai, got %q", c.LLM.Provider)
	}
	if c.LLM.Provider != "disabled" {
		p, ok := c.LLM.Providers[c.LLM.Provider]
		if !ok {
			return fmt.Errorf("llm.provider %q selected but not configured", c.LLM.Provider)
		}
		if !p.APIKey.IsSet() {
			return fmt.Errorf("llm.providers.%s.api_key is required", c.LLM.Provider)
		}
	}
	if c.Classify.LLMTimeout.Duration() <= 0 {
		return fmt.Errorf("classify.llm_timeout must be positive")
	}
	if c.Extract.LLMTimeout.Duration() <= 0 {
		return fmt.Errorf("extract.llm_timeout must be positive")
	}
	return nil
}
