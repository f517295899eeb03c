// Package config handles the taskman configuration directory, the task file
// location, and the optional config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"taskman/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "taskman"

	// TaskFileName is the default task file name.
	TaskFileName = "tasks.json"

	// ConfigFileName is the optional TOML config file name.
	ConfigFileName = "config.toml"

	// EnvTaskFile overrides the task file location when set.
	EnvTaskFile = "TASKMAN_FILE"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// TaskFile is the resolved task file path.
	TaskFile string

	// DefaultPriority applies when a new task has no explicit priority.
	DefaultPriority task.Priority

	// SMTP holds the outgoing mail settings for reminders.
	SMTP SMTPConfig
}

// SMTPConfig holds the settings for reminder and completion emails.
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	From     string `toml:"from"`
}

// fileConfig is the on-disk shape of config.toml. All fields are optional.
type fileConfig struct {
	TaskFile        string     `toml:"task_file"`
	DefaultPriority string     `toml:"default_priority"`
	SMTP            SMTPConfig `toml:"smtp"`
}

// Load builds the configuration. Precedence for the task file location:
// explicit path argument > TASKMAN_FILE env > config.toml > default.
func Load(explicitTaskFile string) (*Config, error) {
	dir := DefaultConfigDir()

	cfg := &Config{
		Dir:             dir,
		TaskFile:        filepath.Join(dir, TaskFileName),
		DefaultPriority: task.PriorityMedium,
		SMTP:            SMTPConfig{Host: "smtp.gmail.com", Port: 587},
	}

	fc, err := readConfigFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, err
	}
	if fc != nil {
		if fc.TaskFile != "" {
			cfg.TaskFile = fc.TaskFile
		}
		if fc.DefaultPriority != "" {
			p, err := task.ParsePriority(fc.DefaultPriority)
			if err != nil {
				return nil, fmt.Errorf("config.toml: %w", err)
			}
			cfg.DefaultPriority = p
		}
		if fc.SMTP.Host != "" {
			cfg.SMTP.Host = fc.SMTP.Host
		}
		if fc.SMTP.Port != 0 {
			cfg.SMTP.Port = fc.SMTP.Port
		}
		cfg.SMTP.Username = fc.SMTP.Username
		cfg.SMTP.From = fc.SMTP.From
	}

	if env := os.Getenv(EnvTaskFile); env != "" {
		cfg.TaskFile = env
	}
	if explicitTaskFile != "" {
		cfg.TaskFile = explicitTaskFile
	}

	return cfg, nil
}

// readConfigFile parses config.toml if present. A missing file is not an error.
func readConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	return &fc, nil
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

// EnsureDir creates the config directory if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0755)
}
