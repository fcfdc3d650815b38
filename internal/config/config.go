package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the process reads from the environment. A local .env
// file is folded in first when present; real environment variables win.
type Config struct {
	Port               string
	DBPath             string
	SecretKey          string
	Location           *time.Location
	AppBaseURL         string
	AllowedEmailDomain string
	AdminEmail         string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DBPath:             getEnv("DB_PATH", filepath.Join("data", "lunchroom.db")),
		SecretKey:          getEnv("SECRET_KEY", "change_me_in_production"),
		Location:           loadLocation(getEnv("TZ", "UTC")),
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		AllowedEmailDomain: getEnv("ALLOWED_EMAIL_DOMAIN", ""),
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:           getEnv("SMTP_FROM", "lunchroom@localhost"),
	}
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("config: invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: invalid %s %q, using %d", key, raw, fallback)
		return fallback
	}
	return parsed
}
