package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session tokens issued on login
	SessionSecret string
	SessionExpiry time.Duration

	// YouTube Data API
	YouTubeAPIKey          string
	YouTubeRegion          string
	YouTubeDefaultCategory string

	// Legacy compatibility account (kept for clients predating registration)
	LegacyUsername          string
	LegacyPassword          string
	LegacyEntertainmentType string

	// Server
	Port        string
	Debug       bool
	CORSOrigins string
}

func Load() *Config {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "youstream_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionExpiry: parseDuration(getEnv("SESSION_EXPIRY", "24h")),

		YouTubeAPIKey:          getEnv("YOUTUBE_API_KEY", ""),
		YouTubeRegion:          getEnv("YOUTUBE_REGION", "ES"),
		YouTubeDefaultCategory: getEnv("YOUTUBE_DEFAULT_CATEGORY", "28"),

		LegacyUsername:          getEnv("LEGACY_USERNAME", "testuser"),
		LegacyPassword:          getEnv("LEGACY_PASSWORD", "testpassword"),
		LegacyEntertainmentType: getEnv("LEGACY_ENTERTAINMENT_TYPE", "Programación y Tecnología"),

		Port:        getEnv("PORT", "8080"),
		Debug:       parseBool(getEnv("DEBUG", "false")),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
