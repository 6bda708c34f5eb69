package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host  string
	Port  int
	Debug bool
}

type DatabaseConfig struct {
	URL                    string
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

type AppConfig struct {
	Name    string
	Version string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
	CORS     CORSConfig
}

// defaultOrigins are the development frontends allowed when
// ALLOWED_ORIGINS is not set.
var defaultOrigins = []string{
	"http://localhost:8081",
	"http://localhost:4173",
	"http://localhost:3000",
	"http://localhost:8080",
}

// Load builds the configuration from environment variables. A .env file
// in the working directory is read first when present; real environment
// variables win. DATABASE_URL is required and startup fails without it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8000)
	v.SetDefault("DEBUG", true)
	v.SetDefault("APP_NAME", "Lemi Hotel Management System")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("DB_MAX_OPEN_CONNS", 30)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SECONDS", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME_SECONDS", 60)

	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	return &Config{
		Server: ServerConfig{
			Host:  v.GetString("HOST"),
			Port:  v.GetInt("PORT"),
			Debug: v.GetBool("DEBUG"),
		},
		Database: DatabaseConfig{
			URL:                    dbURL,
			MaxOpenConns:           v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:           v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSeconds: v.GetInt("DB_CONN_MAX_LIFETIME_SECONDS"),
			ConnMaxIdleTimeSeconds: v.GetInt("DB_CONN_MAX_IDLE_TIME_SECONDS"),
		},
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Version: v.GetString("APP_VERSION"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(v.GetString("ALLOWED_ORIGINS")),
		},
	}, nil
}

// parseOrigins splits a comma-separated origin list, trimming blanks.
// An empty list falls back to the development defaults.
func parseOrigins(s string) []string {
	var origins []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}
	if len(origins) == 0 {
		return defaultOrigins
	}
	return origins
}
