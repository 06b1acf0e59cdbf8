package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// Insecure fallbacks so the site still boots without configuration.
	// Startup logs a warning whenever either is in use.
	DefaultAdminPassword = "admin123"
	DefaultAdminToken    = "insecure-dev-admin-token"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	ContactTo  string
}

type AdminConfig struct {
	Password     string
	PasswordHash string // bcrypt; takes precedence over Password when set
	Token        string // shared bearer token ("shared" mode)
	JWTSecret    string // signing key ("jwt" mode)
	TokenMode    string // "shared" or "jwt"
}

type AIConfig struct {
	Provider      string // "gemini" or "ollama"
	GeminiAPIKey  string
	OllamaBaseURL string
	OllamaModel   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Portfolio Site"),
			ContactTo:  getEnv("CONTACT_TO_EMAIL", getEnv("SMTP_EMAIL", "")),
		},
		Admin: AdminConfig{
			Password:     getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Token:        getEnv("ADMIN_TOKEN", DefaultAdminToken),
			JWTSecret:    getEnv("ADMIN_JWT_SECRET", ""),
			TokenMode:    getEnv("ADMIN_TOKEN_MODE", "shared"),
		},
		Ai: AIConfig{
			Provider:      getEnv("AI_PROVIDER", "gemini"),
			GeminiAPIKey:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
		},
	}

	if cfg.Admin.Password == DefaultAdminPassword && cfg.Admin.PasswordHash == "" {
		log.Println("[WARN] ADMIN_PASSWORD not set, using insecure default")
	}
	if cfg.Admin.Token == DefaultAdminToken && cfg.Admin.TokenMode == "shared" {
		log.Println("[WARN] ADMIN_TOKEN not set, using insecure default")
	}

	return cfg
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
