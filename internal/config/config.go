package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	BaseURL            string        `mapstructure:"dogceo_base_url"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	TargetsFile            string        `mapstructure:"targets_file"`
	PublishersFile         string        `mapstructure:"publishers_file"`
	HarvestIntervalSeconds int64         `mapstructure:"harvest_interval"`
	HarvestInterval        time.Duration `mapstructure:"-"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "dogceo-harvester")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("dogceo_base_url", "https://dog.ceo/api/")
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("targets_file", "./configs/targets.yaml")
	v.SetDefault("publishers_file", "./configs/publishers.yaml")
	v.SetDefault("harvest_interval", 900) // seconds
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/seen.db")
	v.SetDefault("storage_ttl_seconds", int64((5*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be zero or positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.HarvestIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid harvest_interval (must be positive seconds)")
	}
	cfg.HarvestInterval = time.Duration(cfg.HarvestIntervalSeconds) * time.Second

	if cfg.StorageTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	return &cfg, nil
}
