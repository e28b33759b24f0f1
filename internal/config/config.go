// Package config loads storefront settings from an optional YAML file, a .env
// file and the process environment, in that order of precedence (lowest
// first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`

	Backend       string `yaml:"backend" validate:"required,oneof=memory file postgres mongo mysql"`
	FileDir       string `yaml:"file_dir" validate:"required_if=Backend file"`
	PostgresDSN   string `yaml:"postgres_dsn" validate:"required_if=Backend postgres"`
	MongoURI      string `yaml:"mongo_uri" validate:"required_if=Backend mongo"`
	MongoDatabase string `yaml:"mongo_database" validate:"required_if=Backend mongo"`
	MySQLDSN      string `yaml:"mysql_dsn" validate:"required_if=Backend mysql"`

	CartKey      string        `yaml:"cart_key" validate:"required"`
	Currency     string        `yaml:"currency" validate:"omitempty,iso4217"`
	SaleDuration time.Duration `yaml:"sale_duration" validate:"gte=0"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogDev   bool   `yaml:"log_dev"`
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Backend:         "memory",
		FileDir:         "./data",
		MongoDatabase:   "storefront",
		CartKey:         "cart",
		SaleDuration:    24 * time.Hour,
		LogLevel:        "info",
	}
}

// Load reads path (skipped when empty), then .env files, then the
// environment, and validates the result.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("os.ReadFile: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml.Unmarshal: %w", err)
		}
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Addr, "STOREFRONT_ADDR")
	setString(&cfg.Backend, "STOREFRONT_BACKEND")
	setString(&cfg.FileDir, "STOREFRONT_FILE_DIR")
	setString(&cfg.PostgresDSN, "PG_DSN")
	setString(&cfg.MongoURI, "MONGO_URI")
	setString(&cfg.MongoDatabase, "MONGO_DATABASE")
	setString(&cfg.MySQLDSN, "MYSQL_DSN")
	setString(&cfg.CartKey, "STOREFRONT_CART_KEY")
	setString(&cfg.Currency, "STOREFRONT_CURRENCY")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if err := setDuration(&cfg.SaleDuration, "STOREFRONT_SALE_DURATION"); err != nil {
		return err
	}
	if err := setDuration(&cfg.ShutdownTimeout, "STOREFRONT_SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}

	if v, ok := os.LookupEnv("LOG_DEV"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOG_DEV[%s] is not a bool: %w", v, err)
		}
		cfg.LogDev = b
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s[%s] is not a duration: %w", key, v, err)
	}

	*dst = d
	return nil
}
