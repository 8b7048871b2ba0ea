package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. It is built once in main and
// passed to whatever needs it; nothing reads the environment after startup.
type Config struct {
	HTTPPort     string
	DatabaseDSN  string
	CORSOrigins  []string
	SMTPHost     string
	SMTPPort     string
	MailUsername string
	MailPassword string
	MailFrom     string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"),
		CORSOrigins:  []string{getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000")},
		SMTPHost:     getEnv("MAIL_SERVER", "smtp.gmail.com"),
		SMTPPort:     getEnv("MAIL_PORT", "587"),
		MailUsername: getEnv("MAIL_USERNAME", ""),
		MailPassword: getEnv("MAIL_PASSWORD", ""),
	}
	cfg.MailFrom = getEnv("MAIL_FROM", cfg.MailUsername)

	if cfg.MailUsername == "" {
		log.Println("[WARN] MAIL_USERNAME not set, the /email endpoint will fail until it is")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
