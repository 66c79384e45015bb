// Package llm adapts chat-completion backends to the single call the
// recommendation generator needs.
package llm

import (
	"context"
	"fmt"

	"hustle-finder/pkg/config"

	"go.uber.org/zap"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role
	Content string
}

// Provider sends one chat completion. An answer with no choices is returned
// as ("", nil); transport, quota and non-2xx failures are returned as errors.
type Provider interface {
	Name() string
	Complete(ctx context.Context, model string, messages []Message, temperature float64) (string, error)
	Close() error
}

// DefaultModels returns the primary and secondary model for a provider.
func DefaultModels(provider string) (primary, secondary string) {
	switch provider {
	case config.ProviderGigaChat:
		return "GigaChat-Pro", "GigaChat"
	case config.ProviderGemini:
		return "gemini-1.5-pro", "gemini-1.5-flash"
	default:
		return "llama-3.1-70b-versatile", "llama-3.1-8b-instant"
	}
}

// New builds the provider selected by cfg.Provider.
func New(ctx context.Context, cfg *config.LLMConfig, logger *zap.Logger) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL), nil
	case config.ProviderGigaChat:
		p, err := NewGigaChatProvider(ctx, &cfg.GigaChat, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderGemini:
		p, err := NewGeminiProvider(ctx, cfg.Gemini.APIKey)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

// splitSystem separates system instructions from the conversation for
// backends that take the system prompt as a model setting.
func splitSystem(messages []Message) (system string, rest []Message) {
	for _, m := range messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
