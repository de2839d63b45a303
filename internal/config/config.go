// Package config loads settings for the username-history tools from a YAML
// file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bharatsindhu/username-history/internal/output"
	"github.com/bharatsindhu/username-history/internal/roblox"
)

// Config holds settings for both binaries.
type Config struct {
	APIBase    string     `yaml:"api_base"`
	OutputPath string     `yaml:"output"`
	LogLevel   string     `yaml:"log_level"`
	LogFormat  string     `yaml:"log_format"`
	Stub       StubConfig `yaml:"stub"`
}

// StubConfig configures the local history-stub server.
type StubConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	DataPath   string `yaml:"data_path"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		APIBase:    roblox.DefaultBaseURL,
		OutputPath: output.DefaultPath,
		LogLevel:   "warn",
		LogFormat:  "text",
		Stub: StubConfig{
			ListenAddr: ":8081",
			DataPath:   filepath.Join("infra", "sample-history.json"),
		},
	}
}

// Load layers the config file, a .env file and the process environment over the defaults.
// A missing config file or .env file is not an error. Values are not validated here
// because callers may still override them from flags.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path, err := Path()
	if err == nil {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.APIBase = envOrDefault("USERNAME_HISTORY_API_BASE", cfg.APIBase)
	cfg.OutputPath = envOrDefault("USERNAME_HISTORY_OUTPUT", cfg.OutputPath)
	cfg.LogLevel = envOrDefault("USERNAME_HISTORY_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOrDefault("USERNAME_HISTORY_LOG_FORMAT", cfg.LogFormat)
	cfg.Stub.ListenAddr = envOrDefault("HISTORY_STUB_LISTEN_ADDR", cfg.Stub.ListenAddr)
	cfg.Stub.DataPath = envOrDefault("HISTORY_STUB_DATA_PATH", cfg.Stub.DataPath)

	return cfg, nil
}

// Validate checks the settings used by the username-history client.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return errors.New("api_base must not be empty")
	}
	if !strings.HasPrefix(c.APIBase, "http://") && !strings.HasPrefix(c.APIBase, "https://") {
		return fmt.Errorf("api_base %q must be an http(s) URL", c.APIBase)
	}
	if c.OutputPath == "" {
		return errors.New("output must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level %q must be debug, info, warn or error", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q must be text or json", c.LogFormat)
	}
	return nil
}

// ValidateStub checks the settings used by the history-stub server.
func (c *Config) ValidateStub() error {
	if c.Stub.ListenAddr == "" {
		return errors.New("stub.listen_addr must not be empty")
	}
	if c.Stub.DataPath == "" {
		return errors.New("stub.data_path must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q must be text or json", c.LogFormat)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	override(&c.APIBase, fromFile.APIBase)
	override(&c.OutputPath, fromFile.OutputPath)
	override(&c.LogLevel, fromFile.LogLevel)
	override(&c.LogFormat, fromFile.LogFormat)
	override(&c.Stub.ListenAddr, fromFile.Stub.ListenAddr)
	override(&c.Stub.DataPath, fromFile.Stub.DataPath)
	return nil
}

// Path returns the config file location, preferring XDG_CONFIG_HOME.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "username-history", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "username-history", "config.yaml"), nil
}

func override(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func envOrDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
