package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the POS service. Values come from a
// local config.yaml when present, overridden by POS_* environment variables;
// DATABASE_URL is also honored bare for compatibility with container setups.
type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	DatabaseURL     string        `mapstructure:"database_url"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	DefaultPassword string        `mapstructure:"default_password"`
	ExportDir       string        `mapstructure:"export_dir"`
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("session_ttl", 12*time.Hour)
	v.SetDefault("default_password", "admin")
	v.SetDefault("export_dir", ".")

	v.SetEnvPrefix("POS")
	v.AutomaticEnv()
	_ = v.BindEnv("listen_addr")
	_ = v.BindEnv("database_url", "POS_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("redis_addr")
	_ = v.BindEnv("jwt_secret")
	_ = v.BindEnv("session_ttl")
	_ = v.BindEnv("default_password")
	_ = v.BindEnv("export_dir")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database_url is required (set POS_DATABASE_URL or DATABASE_URL)")
	}
	return cfg, nil
}
