// Package config loads askweb configuration from the environment,
// with optional .env support.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Provider identifiers for the generation backend.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds all settings read from the environment.
type Config struct {
	ExaAPIKey         string
	OpenWeatherAPIKey string

	LLMProvider   string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	DefaultCity string
	RedisAddr   string
	HistoryDB   string
	LogLevel    string
}

// Load reads configuration from the environment. If a .env file exists in the
// working directory it is loaded first; real environment variables win.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	return &Config{
		ExaAPIKey:         os.Getenv("EXA_API_KEY"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),

		LLMProvider:   getEnvOrDefault("LLM_PROVIDER", ProviderGemini),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		DefaultCity: getEnvOrDefault("DEFAULT_CITY", "London"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		HistoryDB:   getEnvOrDefault("HISTORY_DB", "askweb_history.db"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// Validate checks that the keys required by the selected provider are present.
func (c *Config) Validate() error {
	if c.ExaAPIKey == "" {
		return fmt.Errorf("EXA_API_KEY not set")
	}

	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY not set")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s", c.LLMProvider)
	}

	return nil
}

// getEnvOrDefault returns the environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
