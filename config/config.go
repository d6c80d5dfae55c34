package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the service reads at startup.
type Config struct {
	DatabaseURL string `mapstructure:"database_url" validate:"required"`
	Port        string `mapstructure:"port" validate:"required,numeric"`

	LogLevel   string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	GinMode    string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
	DBLogLevel string `mapstructure:"db_log_level" validate:"oneof=silent error warn info"`

	DBMaxOpenConns    int           `mapstructure:"db_max_open_conns" validate:"gte=0"`
	DBMaxIdleConns    int           `mapstructure:"db_max_idle_conns" validate:"gte=0"`
	DBConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime" validate:"gte=0"`

	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// envBindings maps config keys to the environment variables that may set them.
// The first variable found wins.
var envBindings = map[string][]string{
	"database_url":         {"DATABASE_URL", "MYSQL_URL"},
	"port":                 {"PORT"},
	"log_level":            {"LOG_LEVEL"},
	"gin_mode":             {"GIN_MODE"},
	"db_log_level":         {"DB_LOG_LEVEL"},
	"db_max_open_conns":    {"DB_MAX_OPEN_CONNS"},
	"db_max_idle_conns":    {"DB_MAX_IDLE_CONNS"},
	"db_conn_max_lifetime": {"DB_CONN_MAX_LIFETIME"},
	"auto_migrate":         {"AUTO_MIGRATE"},
	"shutdown_timeout":     {"SHUTDOWN_TIMEOUT"},
}

// LoadEnvVars loads a .env file into the process environment if one exists.
// Variables already set in the environment are not overridden.
func LoadEnvVars(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// Load reads the optional config.yaml, applies environment overrides and
// validates the result.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the config against its field rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("db_log_level", "silent")
	v.SetDefault("db_max_open_conns", 25)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", time.Hour)
	v.SetDefault("auto_migrate", false)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}
