package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBPath       string  `mapstructure:"CLINIC_DB_PATH"`
	LogLevel     string  `mapstructure:"LOG_LEVEL"`
	Debug        bool    `mapstructure:"DEBUG"`
	LogJSON      bool    `mapstructure:"LOG_JSON"`
	WindowWidth  float32 `mapstructure:"WINDOW_WIDTH"`
	WindowHeight float32 `mapstructure:"WINDOW_HEIGHT"`

	// BackgroundImage is an optional picture stretched behind the form
	BackgroundImage string `mapstructure:"BACKGROUND_IMAGE"`
}

// Load reads configuration from the environment, optionally seeded from a
// .env file in the working directory.
func Load() (*Config, error) {
	// A missing .env is fine; values then come from the real environment.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("CLINIC_DB_PATH", "hospital.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("WINDOW_WIDTH", 800)
	v.SetDefault("WINDOW_HEIGHT", 600)
	v.SetDefault("BACKGROUND_IMAGE", "")

	for _, key := range []string{"CLINIC_DB_PATH", "LOG_LEVEL", "DEBUG", "LOG_JSON", "WINDOW_WIDTH", "WINDOW_HEIGHT", "BACKGROUND_IMAGE"} {
		_ = v.BindEnv(key)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	cfg.BackgroundImage = strings.TrimSpace(cfg.BackgroundImage)

	return cfg, nil
}

// Validate checks that the configuration is usable before anything is opened.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("CLINIC_DB_PATH must not be empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
