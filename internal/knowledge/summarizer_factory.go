package knowledge

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoAPIKey marks a summarizer provider configured without a credential.
var ErrNoAPIKey = errors.New("AI API key not configured")

type SummarizerOptions struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

func NewSummarizer(ctx context.Context, opts SummarizerOptions) (Summarizer, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "gemini"
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("%w for provider %s", ErrNoAPIKey, provider)
	}

	switch provider {
	case "gemini":
		model := opts.Model
		if model == "" {
			model = "gemini-2.0-flash"
		}
		return NewGeminiSummarizer(ctx, opts.APIKey, model)
	case "openai":
		model := opts.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return NewOpenAISummarizer(opts.APIKey, model, opts.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported summarizer provider: %s", opts.Provider)
	}
}
