package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr        string   `yaml:"addr"`
		JWTSecret   string   `yaml:"jwt_secret"`
		TokenTTL    string   `yaml:"token_ttl"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Timer struct {
		WorkMinutes       int `yaml:"work_minutes"`
		ShortBreakMinutes int `yaml:"short_break_minutes"`
		LongBreakMinutes  int `yaml:"long_break_minutes"`
	} `yaml:"timer"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Server.JWTSecret = "change-me"
	cfg.Server.TokenTTL = "24h"
	cfg.Database.Path = "focuswave.db"
	cfg.Timer.WorkMinutes = 25
	cfg.Timer.ShortBreakMinutes = 5
	cfg.Timer.LongBreakMinutes = 15
	return cfg
}

// Load reads the config file at path, substituting ${VAR} placeholders
// with environment variable values before parsing. A missing file is
// not an error; defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Replace environment variables in the YAML content
	content := string(data)
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		placeholder := "${" + pair[0] + "}"
		content = strings.ReplaceAll(content, placeholder, pair[1])
	}

	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets a few common settings be set without a config
// file at all.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOCUSWAVE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("FOCUSWAVE_JWT_SECRET"); v != "" {
		cfg.Server.JWTSecret = v
	}
	if v := os.Getenv("FOCUSWAVE_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
}

// TokenLifetime parses the configured token TTL, defaulting to 24 hours
// on any parse failure.
func (c *Config) TokenLifetime() time.Duration {
	d, err := time.ParseDuration(c.Server.TokenTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}
