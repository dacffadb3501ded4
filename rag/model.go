package rag

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/smallnest/askweb/config"
)

// NewModel builds the generation model selected by the configuration:
// Gemini through the googleai provider, or any OpenAI-compatible endpoint
// through the openai provider.
func NewModel(ctx context.Context, cfg *config.Config) (llms.Model, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return googleai.New(ctx,
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel(cfg.GeminiModel),
		)
	case config.ProviderOpenAI:
		opts := []openai.Option{
			openai.WithModel(cfg.OpenAIModel),
			openai.WithToken(cfg.OpenAIAPIKey),
		}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
		}
		return openai.New(opts...)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}
