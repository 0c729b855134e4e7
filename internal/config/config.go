package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        int
	DatabaseURL string
	LogLevel    string

	// Static bearer token required to publish products.
	APIToken string

	JWTSecret string

	KafkaBrokers []string

	ES_URL      string
	ES_USER     string
	ES_PASSWORD string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		Port:         EnvIntDefault("PORT", 8080),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		LogLevel:     EnvDefault("LOG_LEVEL", "info"),
		APIToken:     EnvDefault("API_TOKEN", "changeme-token"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		ES_URL:       os.Getenv("ES_URL"),
		ES_USER:      os.Getenv("ES_USER"),
		ES_PASSWORD:  os.Getenv("ES_PASSWORD"),
	}

	return config, nil
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
