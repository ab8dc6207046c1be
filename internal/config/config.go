package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
	MailHost    string   `mapstructure:"MAIL_HOST"`
	MailPort    int      `mapstructure:"MAIL_PORT"`
	MailUser    string   `mapstructure:"MAIL_USER"`
	MailPass    string   `mapstructure:"MAIL_PASS"`
	MailFrom    string   `mapstructure:"MAIL_FROM"`
	MailEnabled bool     `mapstructure:"MAIL_ENABLED"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "3333")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAIL_PORT", 587)
	v.SetDefault("MAIL_ENABLED", false)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("MAIL_HOST")
	v.BindEnv("MAIL_PORT")
	v.BindEnv("MAIL_USER")
	v.BindEnv("MAIL_PASS")
	v.BindEnv("MAIL_FROM")
	v.BindEnv("MAIL_ENABLED")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Outbound mail
// requires an SMTP host and a sender address when enabled.
func (c *Config) Validate() error {
	if c.MailEnabled {
		if c.MailHost == "" {
			return fmt.Errorf("MAIL_HOST is required when MAIL_ENABLED is true")
		}
		if c.MailFrom == "" {
			return fmt.Errorf("MAIL_FROM is required when MAIL_ENABLED is true")
		}
	}
	if c.DBMaxConns < c.DBMinConns {
		return fmt.Errorf("DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)", c.DBMaxConns, c.DBMinConns)
	}
	return nil
}
