package llm

import (
	"context"
	"fmt"

	"hustle-finder/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

type GigaChatProvider struct {
	client *gigago.Client
}

func NewGigaChatProvider(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatProvider, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}

	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	return &GigaChatProvider{client: client}, nil
}

func (p *GigaChatProvider) Name() string { return "gigachat" }

func (p *GigaChatProvider) Complete(ctx context.Context, model string, messages []Message, temperature float64) (string, error) {
	system, rest := splitSystem(messages)

	m := p.client.GenerativeModel(model)
	m.SystemInstruction = system
	setFloat(&m.Temperature, temperature)

	chat := make([]gigago.Message, 0, len(rest))
	for _, msg := range rest {
		chat = append(chat, gigago.Message{Role: gigago.RoleUser, Content: msg.Content})
	}

	resp, err := m.Generate(ctx, chat)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *GigaChatProvider) Close() error {
	p.client.Close()
	return nil
}

func setFloat[F ~float32 | ~float64](dst *F, v float64) {
	*dst = F(v)
}
