package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings
type Config struct {
	Port           string
	DBPath         string
	AllowedOrigins []string
}

// LoadConfig loads environment variables from a .env file (if one
// exists) and reads the settings from the environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		DBPath:         os.Getenv("DB_PATH"),
		AllowedOrigins: []string{"*"},
	}

	if cfg.Port == "" {
		cfg.Port = "3001"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./tasklight.db"
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(origin))
		}
	}

	return cfg, nil
}
