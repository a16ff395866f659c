package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata" // DISPLAY_TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/SscSPs/business_hub_app/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	StorageBackend string
	DatabaseURL    string
	EnableDBCheck  bool
	SeedSampleData bool

	// DisplayLocation decides "today" and the current month.
	DisplayLocation *time.Location

	AuthEnabled       bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AdminUsername     string
	AdminPasswordHash string

	LoginRateLimit  string
	APIRateLimit    string
	FrontendBaseURL string

	PosthogAPIKey   string
	PosthogEndpoint string

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	BackupSchedule string
	BackupDir      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

const insecureDefaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_BACKEND", StorageMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("DISPLAY_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", insecureDefaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "businesshub-backend")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("API_RATE_LIMIT", "300-M")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "businesshub")
	v.SetDefault("AMQP_QUEUE", "businesshub.notifications")
	v.SetDefault("BACKUP_SCHEDULE", "")
	v.SetDefault("BACKUP_DIR", "backups")
	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", "businesshub-backups")
	v.SetDefault("MINIO_USE_SSL", true)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		StorageBackend:    strings.ToLower(v.GetString("STORAGE_BACKEND")),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		SeedSampleData:    v.GetBool("SEED_SAMPLE_DATA"),
		AuthEnabled:       v.GetBool("AUTH_ENABLED"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		AdminUsername:     v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		LoginRateLimit:    v.GetString("LOGIN_RATE_LIMIT"),
		APIRateLimit:      v.GetString("API_RATE_LIMIT"),
		FrontendBaseURL:   v.GetString("FRONTEND_BASE_URL"),
		PosthogAPIKey:     v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:   v.GetString("POSTHOG_ENDPOINT"),
		AMQPURL:           v.GetString("AMQP_URL"),
		AMQPExchange:      v.GetString("AMQP_EXCHANGE"),
		AMQPQueue:         v.GetString("AMQP_QUEUE"),
		BackupSchedule:    v.GetString("BACKUP_SCHEDULE"),
		BackupDir:         v.GetString("BACKUP_DIR"),
		MinioEndpoint:     v.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:    v.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:    v.GetString("MINIO_SECRET_KEY"),
		MinioBucket:       v.GetString("MINIO_BUCKET"),
		MinioUseSSL:       v.GetBool("MINIO_USE_SSL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageBackend {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_BACKEND is %q", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want %q or %q)", cfg.StorageBackend, StorageMemory, StoragePostgres)
	}

	tz := v.GetString("DISPLAY_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", tz, err)
	}
	cfg.DisplayLocation = loc

	// Load JWT Expiry Duration (e.g., "60m", "12h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	cfg.JWTExpiryDuration, err = time.ParseDuration(jwtExpiryStr)
	if err != nil || cfg.JWTExpiryDuration <= 0 {
		cfg.JWTExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, cfg.JWTExpiryDuration)
	}

	if cfg.AuthEnabled {
		if cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required when AUTH_ENABLED is true")
		}
		if !utils.IsPasswordHash(cfg.AdminPasswordHash) {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is not a bcrypt hash (generate one with cmd/hashpassword)")
		}
		if cfg.JWTSecret == insecureDefaultJWTSecret {
			if cfg.IsProduction {
				return nil, fmt.Errorf("JWT_SECRET must be set in production")
			}
			log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
		}
	}

	return cfg, nil
}
