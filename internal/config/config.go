package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment.
// Loaded once in main and handed to constructors.
type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	JWTSecret     string
	NewsAPIKey    string
	GNewsAPIKey   string
	NLPServiceURL string
	OpenAIKey     string
	AnthropicKey  string
	FrontendURL   string
}

func Load() Config {
	godotenv.Load()

	cfg := Config{
		Port:          os.Getenv("PORT"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		NewsAPIKey:    os.Getenv("NEWS_API_KEY"),
		GNewsAPIKey:   os.Getenv("GNEWS_API_KEY"),
		NLPServiceURL: os.Getenv("NLP_SERVICE_URL"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	return cfg
}
