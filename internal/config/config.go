package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SourceRemote = "remote"
	SourceStored = "stored"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	TrendAPI TrendAPIConfig `yaml:"trend_api"`
	Trends   TrendsConfig   `yaml:"trends"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type PostgresConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// TrendAPIConfig configures the upstream trend endpoint.
type TrendAPIConfig struct {
	URL        string        `yaml:"url"`
	Timeout    time.Duration `yaml:"timeout"`
	RetryCount int           `yaml:"retry_count"`
	RetryWait  time.Duration `yaml:"retry_wait"`
	UserAgent  string        `yaml:"user_agent"`
	QPS        float64       `yaml:"qps"`
	Burst      int           `yaml:"burst"`
}

type TrendsConfig struct {
	DefaultSource string `yaml:"default_source"` // remote | stored
	MaxKeywords   int    `yaml:"max_keywords"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Postgres: PostgresConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		TrendAPI: TrendAPIConfig{
			URL:        "https://trend-kyos.onrender.com",
			Timeout:    15 * time.Second,
			RetryCount: 2,
			RetryWait:  500 * time.Millisecond,
			UserAgent:  "trendsniper-service/1.0",
			QPS:        2,
			Burst:      2,
		},
		Trends: TrendsConfig{
			DefaultSource: SourceRemote,
			MaxKeywords:   5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the config from defaults, then the YAML file at path (if any),
// then environment variables. A .env file in the working directory is loaded
// into the environment first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("TREND_API_URL"); v != "" {
		cfg.TrendAPI.URL = v
	}
	if v := os.Getenv("TREND_SOURCE"); v != "" {
		cfg.Trends.DefaultSource = v
	}
	if v := os.Getenv("TREND_MAX_KEYWORDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TREND_MAX_KEYWORDS: %w", err)
		}
		cfg.Trends.MaxKeywords = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Postgres.DSN == "" {
		return errors.New("POSTGRES_DSN is not set")
	}
	switch c.Trends.DefaultSource {
	case SourceRemote, SourceStored:
	default:
		return fmt.Errorf("trends.default_source must be %q or %q, got %q", SourceRemote, SourceStored, c.Trends.DefaultSource)
	}
	if c.Trends.MaxKeywords <= 0 {
		return errors.New("trends.max_keywords must be positive")
	}
	if c.TrendAPI.URL == "" {
		return errors.New("trend_api.url is required")
	}
	if c.TrendAPI.QPS < 0 {
		return errors.New("trend_api.qps must not be negative")
	}
	return nil
}
