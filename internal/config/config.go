package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	LogLevel            string
	DatabaseURL         string
	RedisURL            string
	SupabaseURL         string // storage sign URLs and public photo URLs
	SupabaseSecretKey   string // service_role key, not anon key
	MediaBucket         string
	FrontendURLEndsWith string
	DevPassword         string
	HealthAdminKey      string
	SubmitDelay         time.Duration // simulated latency before a listing is handed to the submitter
	SessionTTL          time.Duration
	DraftTTL            time.Duration // 0 keeps drafts forever
}

const (
	defaultPort        = "8080"
	defaultMediaBucket = "listing-photos"
	defaultSubmitDelay = 2 * time.Second
	defaultSessionTTL  = 2 * time.Hour
)

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MEDIA_BUCKET", defaultMediaBucket)
	v.SetDefault("SUBMIT_DELAY", defaultSubmitDelay.String())
	v.SetDefault("SESSION_TTL", defaultSessionTTL.String())
	v.SetDefault("DRAFT_TTL", "0s")

	env := strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))
	if env == "" {
		env = "development"
	}

	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		// Per-environment URLs, the same naming the deploy targets use.
		switch env {
		case "production":
			dbURL = v.GetString("DATABASE_URL_PROD")
		case "test":
			dbURL = v.GetString("DATABASE_URL_TEST")
		default:
			dbURL = v.GetString("DATABASE_URL_DEV")
		}
	}

	return &Config{
		Env:                 env,
		Port:                v.GetString("PORT"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		DatabaseURL:         dbURL,
		RedisURL:            v.GetString("REDIS_URL"),
		SupabaseURL:         v.GetString("SUPABASE_URL"),
		SupabaseSecretKey:   v.GetString("SUPABASE_SECRET_KEY"),
		MediaBucket:         v.GetString("MEDIA_BUCKET"),
		FrontendURLEndsWith: v.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         v.GetString("DEV_PASSWORD"),
		HealthAdminKey:      v.GetString("HEALTH_ADMIN_KEY"),
		SubmitDelay:         nonNegative(v.GetDuration("SUBMIT_DELAY")),
		SessionTTL:          orDuration(v.GetDuration("SESSION_TTL"), defaultSessionTTL),
		DraftTTL:            nonNegative(v.GetDuration("DRAFT_TTL")),
	}, nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// StorageConfigured reports whether photo uploads can be signed against Supabase.
func (c *Config) StorageConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseSecretKey != ""
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

func orDuration(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
