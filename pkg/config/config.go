package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	GitHub   GitHubConfig
	Backend  BackendConfig
	Frontend FrontendConfig
	TweetBot TweetBotConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type GitHubConfig struct {
	Token         string
	WebhookSecret string
	BotMention    string
}

type BackendConfig struct {
	URL    string
	APIKey string
}

type FrontendConfig struct {
	URL     string
	Network string
}

type TweetBotConfig struct {
	URL    string
	APIKey string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		GitHub: GitHubConfig{
			Token:         getEnv("GITHUB_TOKEN", ""),
			WebhookSecret: getEnv("GITHUB_WEBHOOK_SECRET", "donotuseinprod"),
			BotMention:    getEnv("BOT_MENTION", "/githoney"),
		},
		Backend: BackendConfig{
			URL:    getEnv("BACKEND_URL", "http://localhost:4000"),
			APIKey: getEnv("BACKEND_API_KEY", ""),
		},
		Frontend: FrontendConfig{
			URL:     getEnv("FRONTEND_URL", "https://githoney.io"),
			Network: getEnv("NETWORK", "preprod"),
		},
		TweetBot: TweetBotConfig{
			URL:    getEnv("TWEET_BOT_URL", ""),
			APIKey: getEnv("TWEET_BOT_API_KEY", ""),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
