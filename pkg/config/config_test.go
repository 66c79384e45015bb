package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("COMMUNITY_LIMIT", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.PrimaryModel)
	assert.Equal(t, 20, cfg.Community.Limit)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("OPENAI_MODEL", "llama-3.3-70b")
	t.Setenv("COMMUNITY_LIMIT", "5")
	t.Setenv("GIGACHAT_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "llama-3.3-70b", cfg.LLM.PrimaryModel)
	assert.Equal(t, 5, cfg.Community.Limit)
	assert.True(t, cfg.LLM.GigaChat.InsecureSkipVerify)
}

func TestLoad_InvalidCommunityLimitFallsBack(t *testing.T) {
	for _, value := range []string{"-3", "abc", "21", "500"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("COMMUNITY_LIMIT", value)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, MaxCommunityLimit, cfg.Community.Limit)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		llm     LLMConfig
		wantErr string
	}{
		{
			name: "openai with key",
			llm:  LLMConfig{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "k"}},
		},
		{
			name:    "openai without key",
			llm:     LLMConfig{Provider: ProviderOpenAI},
			wantErr: "OPENAI_API_KEY",
		},
		{
			name:    "gigachat without key",
			llm:     LLMConfig{Provider: ProviderGigaChat},
			wantErr: "GIGACHAT_API_KEY",
		},
		{
			name: "gemini with key",
			llm:  LLMConfig{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}},
		},
		{
			name:    "unknown provider",
			llm:     LLMConfig{Provider: "bard"},
			wantErr: "unknown LLM_PROVIDER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LLM: tt.llm, JWT: JWTConfig{SecretKey: "s"}}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
