// Package config
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Address        string
	DBPath         string
	JWTSecret      string
	JWTExpiry      time.Duration
	RedisAddr      string
	CacheTTL       time.Duration
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string
}

func Load() *Config {
	godotenv.Load()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "cartify.db"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "insecure-dev-secret"
	}

	jwtExpiry := 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			jwtExpiry = parsed
		}
	}

	cacheTTL := 15 * time.Minute
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			cacheTTL = parsed
		}
	}

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	return &Config{
		Address:        addr,
		DBPath:         dbPath,
		JWTSecret:      secret,
		JWTExpiry:      jwtExpiry,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		CacheTTL:       cacheTTL,
		AllowedOrigins: origins,
		LogLevel:       logLevel,
		LogFormat:      logFormat,
	}
}
