package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrNotConfigured means no provider credentials were found.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider builds the configured provider wrapped as
// caller -> retry -> logging -> provider.
func NewProvider(ctx context.Context, cfg Config, log zerolog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}

// NewProviderFromEnv reads CONCEPTSORT_ configuration, falling back to the
// vendors' standard key variables when the selected provider has no key.
func NewProviderFromEnv(ctx context.Context, log zerolog.Logger) (Provider, Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, Config{}, err
	}
	if cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, Config{}, fmt.Errorf("%w: set %sLLM_PROVIDER and its API key, or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY", ErrNotConfigured, EnvPrefix)
		}
		discovered.Retry = cfg.Retry
		discovered.Timeout = cfg.Timeout
		cfg = discovered
	}

	p, err := NewProvider(ctx, cfg, log)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
