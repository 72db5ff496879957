package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	RedisURL string

	SessionSecret string
	SessionTTL    time.Duration

	DiscordClientID     string
	DiscordClientSecret string
	DiscordRedirectURL  string
	// DiscordAuthURL/TokenURL/APIBaseURL default to the public Discord
	// endpoints; overridable so tests can point at a local server.
	DiscordAuthURL    string
	DiscordTokenURL   string
	DiscordAPIBaseURL string

	ViewsDir string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisURL: os.Getenv("REDIS_URL"),

		SessionSecret: getEnv("SESSION_SECRET", "change-me"),

		DiscordClientID:     os.Getenv("DISCORD_CLIENT_ID"),
		DiscordClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
		DiscordRedirectURL:  getEnv("DISCORD_REDIRECT_URL", "http://localhost:3000/auth/discord/callback"),
		DiscordAuthURL:      getEnv("DISCORD_AUTH_URL", "https://discord.com/api/oauth2/authorize"),
		DiscordTokenURL:     getEnv("DISCORD_TOKEN_URL", "https://discord.com/api/oauth2/token"),
		DiscordAPIBaseURL:   getEnv("DISCORD_API_BASE_URL", "https://discord.com/api"),

		ViewsDir: getEnv("VIEWS_DIR", "views"),
	}

	ttlMinutes, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "1440"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}
	cfg.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
