package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI   = "openai"
	ProviderGigaChat = "gigachat"
	ProviderGemini   = "gemini"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	LLM       LLMConfig
	Community CommunityConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// LLMConfig selects the text-generation provider. PrimaryModel is optional;
// an empty value lets the provider pick its built-in default.
type LLMConfig struct {
	Provider     string
	PrimaryModel string
	OpenAI       OpenAIConfig
	GigaChat     GigaChatConfig
	Gemini       GeminiConfig
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

type GeminiConfig struct {
	APIKey string
}

// MaxCommunityLimit bounds the community feed page size.
const MaxCommunityLimit = 20

type CommunityConfig struct {
	Limit int
}

func Load() (*Config, error) {
	// .env is optional, plain environment variables work the same (Docker/K8s)
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "60"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	communityLimit, err := strconv.Atoi(getEnv("COMMUNITY_LIMIT", strconv.Itoa(MaxCommunityLimit)))
	if err != nil || communityLimit <= 0 || communityLimit > MaxCommunityLimit {
		communityLimit = MaxCommunityLimit
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "hustle_finder"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(maxConns),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		LLM: LLMConfig{
			Provider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
			PrimaryModel: getEnv("OPENAI_MODEL", ""),
			OpenAI: OpenAIConfig{
				APIKey:  getEnv("OPENAI_API_KEY", ""),
				BaseURL: getEnv("OPENAI_BASE_URL", ""),
			},
			GigaChat: GigaChatConfig{
				APIKey:             getEnv("GIGACHAT_API_KEY", ""),
				Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
				InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
			},
			Gemini: GeminiConfig{
				APIKey: getEnv("GEMINI_API_KEY", ""),
			},
		},
		Community: CommunityConfig{
			Limit: communityLimit,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// Validate reports deployment errors that would otherwise only show up as
// offline-fallback recommendations at request time.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.LLM.Provider)
		}
	case ProviderGigaChat:
		if c.LLM.GigaChat.APIKey == "" {
			return fmt.Errorf("GIGACHAT_API_KEY is required for provider %q", c.LLM.Provider)
		}
	case ProviderGemini:
		if c.LLM.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY must not be empty")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
