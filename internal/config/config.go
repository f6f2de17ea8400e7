package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              string
	MongoDBURI        string
	MongoDBName       string
	JWTSecret         string
	JWKSURL           string
	RedisAddr         string
	RedisPassword     string
	CacheTTL          time.Duration
	WriteRateLimit    float64
	WriteRateBurst    int
	ReconcileInterval time.Duration
	Environment       string
	LogLevel          string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "8080"),
		MongoDBURI:        os.Getenv("MONGODB_URI"),
		MongoDBName:       getEnvWithDefault("MONGODB_DB", "eventara"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWKSURL:           os.Getenv("AUTH_JWKS_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CacheTTL:          getEnvDuration("CACHE_TTL", 30*time.Second),
		WriteRateLimit:    getEnvFloat("WRITE_RATE_LIMIT", 5),
		WriteRateBurst:    getEnvInt("WRITE_RATE_BURST", 10),
		ReconcileInterval: getEnvDuration("RATING_RECONCILE_INTERVAL", 5*time.Minute),
		Environment:       getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		return nil, fmt.Errorf("JWT_SECRET or AUTH_JWKS_URL is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
