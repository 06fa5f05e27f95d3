package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "filevault.db"
	defaultRedisAddr   = "localhost:6379"
	defaultRedisDB     = "0"
	defaultFolderPath  = "/tmp/files_manager"
	defaultSessionTTL  = "24h"
)

type RuntimeConfig struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	RedisDB     int
	FolderPath  string
	SessionTTL  time.Duration
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{
		Port:        strings.TrimSpace(getEnv("APP_PORT", defaultPort)),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		RedisAddr:   strings.TrimSpace(getEnv("REDIS_ADDR", defaultRedisAddr)),
		FolderPath:  strings.TrimSpace(getEnv("FOLDER_PATH", defaultFolderPath)),
	}

	var err error
	cfg.RedisDB, err = parseIntEnv("REDIS_DB", defaultRedisDB)
	if err != nil {
		return nil, err
	}

	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.FolderPath == "" {
		return nil, fmt.Errorf("FOLDER_PATH must not be empty")
	}

	return cfg, nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
