package config

import (
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Record configuration
	RecordPath string

	// Site configuration
	SiteBaseURL string

	// Page cache configuration (disabled when MemcacheAddr is empty)
	MemcacheAddr string
	PageCacheTTL time.Duration

	// Publisher configuration (disabled when RedisAddr is empty)
	RedisAddr      string
	RedisDB        int
	RedisStream    string
	RedisStreamMax int

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMax, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAXLEN", "1000"))
	cacheTTL, _ := strconv.Atoi(getEnv("PAGE_CACHE_TTL_SECONDS", "120"))

	return &Config{
		RecordPath:     getEnv("RECORD_PATH", "items.xml"),
		SiteBaseURL:    getEnv("SITE_BASE_URL", "https://topcomputer.ru/"),
		MemcacheAddr:   getEnv("MEMCACHE_ADDR", ""),
		PageCacheTTL:   time.Duration(cacheTTL) * time.Second,
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisDB:        redisDB,
		RedisStream:    getEnv("REDIS_STREAM", "pricewatch:observations"),
		RedisStreamMax: streamMax,
		Environment:    getEnv("PRICEWATCH_ENVIRONMENT", "development"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
