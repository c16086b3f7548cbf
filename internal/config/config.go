package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseDSN string `mapstructure:"DATABASE_DSN"`
	Env         string `mapstructure:"APP_ENV"`
	Seed        bool   `mapstructure:"DB_SEED"`
	DBDebug     bool   `mapstructure:"DB_DEBUG"`
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by the caller) > default.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_DSN", "file:invoicing.db")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_SEED", true)
	v.SetDefault("DB_DEBUG", false)
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env vars through Unmarshal, so bind
	// each key explicitly.
	for _, key := range []string{"PORT", "DATABASE_DSN", "APP_ENV", "DB_SEED", "DB_DEBUG"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the app runs in a development environment.
func (c Config) IsDevelopment() bool { return c.Env == "development" }
