package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the simulator.
type Config struct {
	Tick     time.Duration `yaml:"tick"`
	LogLevel string        `yaml:"log_level"`
	LogFile  string        `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Tick:     DefaultTick,
		LogLevel: "info",
	}
}

// Load reads the YAML file at path (skipped if path is empty), then applies overrides
// from a .env file in the working directory and from ELEVSIM_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	// Variables already set in the environment take precedence over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (cfg *Config) applyEnv() error {
	if v, ok := os.LookupEnv("ELEVSIM_TICK"); ok {
		tick, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ELEVSIM_TICK: %w", err)
		}
		cfg.Tick = tick
	}
	if v, ok := os.LookupEnv("ELEVSIM_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("ELEVSIM_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", cfg.Tick)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto a slog level.
func (cfg Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return level, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	return level, nil
}
