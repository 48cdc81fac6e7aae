package factory

import (
	"fmt"

	"mindwell-be/pkg/llm"
	"mindwell-be/pkg/llm/gemini"
	"mindwell-be/pkg/llm/ollama"
	"mindwell-be/pkg/llm/openai"
)

// Config carries the provider-specific knobs; unused fields are ignored by
// providers that do not need them.
type Config struct {
	Provider string // "gemini", "openai", "ollama"
	Model    string
	ApiKey   string
	BaseURL  string
}

func NewProvider(cfg Config) (llm.Provider, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.ApiKey == "" {
			return nil, fmt.Errorf("gemini requires an api key")
		}
		return gemini.NewGeminiProvider(cfg.ApiKey, cfg.Model), nil
	case "openai":
		return openai.NewOpenAIProvider(cfg.ApiKey, cfg.BaseURL, cfg.Model)
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
