package config

import (
	"fmt"

	apperrors "contact-form-backend/internal/errors"

	"github.com/spf13/viper"
)

// DefaultSecretKey is the development-only signing key
const DefaultSecretKey = "dev-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Application log file (rotated); stdout only when empty
	LogFile           string `mapstructure:"LOG_FILE"`
	LogFileMaxSizeMB  int    `mapstructure:"LOG_FILE_MAX_SIZE_MB"`
	LogFileMaxBackups int    `mapstructure:"LOG_FILE_MAX_BACKUPS"`
	LogFileMaxAgeDays int    `mapstructure:"LOG_FILE_MAX_AGE_DAYS"`

	// Database configuration: postgres://... or sqlite://path
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Signing key for flash cookies
	SecretKey string `mapstructure:"SECRET_KEY"`

	// JSON array log of every accepted submission
	SubmissionsLogPath string `mapstructure:"SUBMISSIONS_LOG_PATH"`

	// SMTP notification (disabled unless SMTP_HOST and NOTIFY_TO are set)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	NotifyTo     string `mapstructure:"NOTIFY_TO"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_FILE_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_FILE_MAX_BACKUPS", 5)
	v.SetDefault("LOG_FILE_MAX_AGE_DAYS", 28)

	// Local development only
	v.SetDefault("DATABASE_URL", "sqlite://app.db")
	v.SetDefault("SECRET_KEY", DefaultSecretKey)
	v.SetDefault("SUBMISSIONS_LOG_PATH", "submissions.json")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "noreply@localhost")
	v.SetDefault("NOTIFY_TO", "")
}

func validate(config *Config) error {
	if config.IsProduction() {
		if config.SecretKey == "" || config.SecretKey == DefaultSecretKey {
			return apperrors.ErrSecretKeyNotSet
		}
	}

	if config.DatabaseURL == "" {
		return apperrors.ErrDatabaseURLMissing
	}

	if config.SubmissionsLogPath == "" {
		return apperrors.ErrSubmissionLogMissing
	}

	return nil
}

// NotificationsEnabled reports whether an SMTP notifier should be built
func (c *Config) NotificationsEnabled() bool {
	return c.SMTPHost != "" && c.NotifyTo != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
