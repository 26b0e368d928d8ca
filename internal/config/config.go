package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// devJWTSecret is only used when environment=development and no JWT_SECRET
// is set. Outside development a missing secret is fatal at startup.
const devJWTSecret = "dev_secret_change_me"

type Config struct {
	Environment string `mapstructure:"environment"`

	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`

	JWT struct {
		Secret         string `mapstructure:"secret"`
		ExpirationDays int    `mapstructure:"expiration_days"`
		Issuer         string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("environment", "development")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Authorization", "Content-Type"})
	v.SetDefault("jwt.expiration_days", 7)
	v.SetDefault("jwt.issuer", "freight-backend")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "freight_db")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Environment = env
	}

	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}

	// Override database settings from DB_* environment variables
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Database.Port = n
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.Server.CorsAllowedOrigins = strings.Split(origin, ",")
	}

	// JWT secret is required outside development, no silent fallback
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWT.Secret == "" {
		if cfg.Environment == "development" {
			log.Printf("[Config] WARNING: JWT_SECRET not set, using insecure development secret")
			cfg.JWT.Secret = devJWTSecret
		} else {
			log.Fatal("JWT_SECRET must be set when environment is not development")
		}
	}

	return &cfg
}
