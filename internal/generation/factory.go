package generation

import (
	"context"
	"fmt"

	"github.com/2beens/gymcoach/internal/config"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// NewFromConfig builds the configured generator.
func NewFromConfig(ctx context.Context, cfg config.GeneratorConfig, apiKey string) (Generator, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewChatClient(ChatClientParams{
			BaseURL:     cfg.BaseURL,
			APIKey:      apiKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
		}), nil
	case ProviderGemini:
		gemini, err := NewGeminiClient(ctx, apiKey, cfg.Model, cfg.Temperature)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	default:
		return nil, fmt.Errorf("unknown generator provider: %s", cfg.Provider)
	}
}
