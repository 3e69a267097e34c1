// Package config handles environment settings and the configuration directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "taskpad"

	// UserFile is the stored user identity filename.
	UserFile = "user.json"

	// TokenFile is the stored bearer token filename. Contains the raw
	// token string, nothing else.
	TokenFile = "token"
)

// Env holds settings read from the environment.
type Env struct {
	// APIBaseURL is the base URL of the task API server.
	APIBaseURL string `env:"TASKPAD_API_URL" env-default:"http://localhost:8080"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIBaseURL is the base URL of the task API server.
	APIBaseURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory
// and settings read from the environment.
// If configDir is empty, uses XDG_CONFIG_HOME/taskpad or $HOME/.config/taskpad.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return &Config{Dir: dir, APIBaseURL: env.APIBaseURL}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// UserPath returns the path to the stored user identity file.
func (c *Config) UserPath() string {
	return filepath.Join(c.Dir, UserFile)
}

// TokenPath returns the path to the stored token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}
