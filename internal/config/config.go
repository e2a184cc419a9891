package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Admin   AdminConfig
	OAuth   OAuthConfig
	Contact ContactConfig
	SMTP    SMTPConfig
	Events  EventsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	StaticDir          string
}

type StoreConfig struct {
	Driver      string // "memory", "redis" or "postgres"
	RedisURL    string
	RedisPrefix string
	DatabaseDSN string
}

type AdminConfig struct {
	Password    string
	JWTSecret   string
	UserID      string
	Login       string
	DisplayName string
	AvatarURL   string
}

type OAuthConfig struct {
	GitHubClientID     string
	GitHubClientSecret string
	RedirectURL        string
	GitHubAPIURL       string
}

type ContactConfig struct {
	FormEndpoint string
	OwnerEmail   string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type EventsConfig struct {
	ContentTopic string
	NatsURL      string // empty disables the NATS bridge
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	baseURL := getEnv("APP_BASE_URL", "http://localhost:3000")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            baseURL,
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			StaticDir:          getEnv("STATIC_DIR", "./public"),
		},
		Store: StoreConfig{
			Driver:      getEnv("STORE_DRIVER", "memory"),
			RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
			RedisPrefix: getEnv("REDIS_KEY_PREFIX", "portfolio:"),
			DatabaseDSN: getEnv("DB_CONNECTION_STRING", ""),
		},
		Admin: AdminConfig{
			Password:    getEnv("ADMIN_PASSWORD", "admin123"),
			JWTSecret:   getEnv("JWT_SECRET", "default_secret"),
			UserID:      getEnv("ADMIN_USER_ID", "1"),
			Login:       getEnv("ADMIN_LOGIN", "charchitd"),
			DisplayName: getEnv("ADMIN_DISPLAY_NAME", "Charchit Dhawan"),
			AvatarURL:   getEnv("ADMIN_AVATAR_URL", "/images/hero_portrait.jpg"),
		},
		OAuth: OAuthConfig{
			GitHubClientID:     getEnv("GITHUB_CLIENT_ID", "YOUR_GITHUB_CLIENT_ID"),
			GitHubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			RedirectURL:        getEnv("GITHUB_REDIRECT_URL", baseURL+"/admin/callback"),
			GitHubAPIURL:       getEnv("GITHUB_API_URL", "https://api.github.com"),
		},
		Contact: ContactConfig{
			FormEndpoint: getEnv("CONTACT_FORM_ENDPOINT", "https://formspree.io/f/xnqevwdr"),
			OwnerEmail:   getEnv("CONTACT_OWNER_EMAIL", "charchitdhawan@gmail.com"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Portfolio"),
		},
		Events: EventsConfig{
			ContentTopic: getEnv("CONTENT_EVENTS_TOPIC", "CONTENT_SAVED"),
			NatsURL:      getEnv("NATS_URL", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
