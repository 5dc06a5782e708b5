package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	API    APIConfig    `yaml:"api"`
	Mock   MockConfig   `yaml:"mock"`
	Poll   PollConfig   `yaml:"poll"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig locates the local document store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// APIConfig points the view services at an API base URL. Empty means the
// process's own mock API mount.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// MockConfig controls the embedded mock API. Jobs and Candidates size the
// seed dataset; Seed pins the RNG (0 seeds from the clock).
type MockConfig struct {
	Enabled    bool  `yaml:"enabled"`
	Jobs       int   `yaml:"jobs"`
	Candidates int   `yaml:"candidates"`
	Seed       int64 `yaml:"seed"`
}

// PollConfig sets the live-counts refresh cadence.
type PollConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Load reads configuration from an optional YAML file and environment
// variables. A local .env file is loaded first, best effort.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Store: StoreConfig{
			Path: "talentflow.db",
		},
		Mock: MockConfig{
			Enabled:    true,
			Jobs:       100,
			Candidates: 1200,
		},
		Poll: PollConfig{
			Interval: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
		},
	}

	if path := os.Getenv("TALENTFLOW_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("TALENTFLOW_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("TALENTFLOW_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TALENTFLOW_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if storePath := os.Getenv("TALENTFLOW_STORE_PATH"); storePath != "" {
		cfg.Store.Path = storePath
	}
	if baseURL := os.Getenv("TALENTFLOW_API_BASE_URL"); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if mock := os.Getenv("TALENTFLOW_MOCK_ENABLED"); mock != "" {
		enabled, err := strconv.ParseBool(mock)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TALENTFLOW_MOCK_ENABLED: %w", err)
		}
		cfg.Mock.Enabled = enabled
	}
	if interval := os.Getenv("TALENTFLOW_POLL_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TALENTFLOW_POLL_INTERVAL: %w", err)
		}
		cfg.Poll.Interval = d
	}
	if level := os.Getenv("TALENTFLOW_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

// BaseURL resolves the API base the view services should call: an explicit
// configured URL, or this process's own mock mount.
func (c Config) BaseURL() string {
	if c.API.BaseURL != "" {
		return c.API.BaseURL
	}
	host := c.Server.Host
	if host == "0.0.0.0" || host == "" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%d/api", host, c.Server.Port)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
