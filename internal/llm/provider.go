package llm

import (
	"fmt"

	"github.com/fyrsmithlabs/noteflow/internal/config"
)

// NewClient creates a completion client from config. A disabled or
// missing provider yields NoOpClient, never an error, so the pipeline
// always constructs.
func NewClient(cfg config.LLMConfig) (Client, error) {
	if cfg.Provider == "" || cfg.Provider == "disabled" {
		return NoOpClient{}, nil
	}

	providerCfg, ok := cfg.Providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("provider %q not configured", cfg.Provider)
	}

	switch cfg.Provider {
	case "anthropic":
		return newAnthropicClient(providerCfg)
	case "openai":
		return newOpenAIClient(providerCfg)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
