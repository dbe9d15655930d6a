package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Session struct {
		MaxDurationSeconds         int `yaml:"maxDurationSeconds"`
		MaxStored                  int `yaml:"maxStored"`
		CollaboratorTimeoutSeconds int `yaml:"collaboratorTimeoutSeconds"`
	} `yaml:"session"`

	// UseMock swaps every Gemini collaborator for its canned counterpart
	UseMock bool `yaml:"useMock"`
}

// LoadConfig reads the configuration file and applies environment overrides
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.ApiKey = v
	}
	if v := os.Getenv("MAX_SESSION_DURATION"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.Session.MaxDurationSeconds = seconds
		}
	}
	if v := os.Getenv("USE_MOCK_MODE"); v != "" {
		if useMock, err := strconv.ParseBool(v); err == nil {
			cfg.UseMock = useMock
		}
	}
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Session.MaxDurationSeconds == 0 {
		cfg.Session.MaxDurationSeconds = 300
	}
	if cfg.Session.MaxStored == 0 {
		cfg.Session.MaxStored = 100
	}
	if cfg.Session.CollaboratorTimeoutSeconds == 0 {
		cfg.Session.CollaboratorTimeoutSeconds = 15
	}
}
