package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all environment-driven settings for the API server.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	SecretKey   string
	CORSOrigins []string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
}

// Load reads configuration from the environment. DATABASE_URL takes
// precedence; otherwise the PG_* variables are assembled into a DSN.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SecretKey:       os.Getenv("SECRET_KEY"),
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		host := os.Getenv("PG_HOST")
		port := os.Getenv("PG_PORT")
		user := os.Getenv("PG_USER")
		dbname := os.Getenv("PG_DB")
		password := os.Getenv("PG_PASSWORD")
		if host == "" {
			return nil, fmt.Errorf("DATABASE_URL or PG_HOST must be set")
		}
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			user, password, host, port, dbname)
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY must be set")
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
