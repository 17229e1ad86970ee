package platform

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile   = "deskmate.yaml"
	DefaultScheduleFile = "schedule_data.json"
	DefaultNotepadFile  = "notepad_data.json"
)

// Config is the file-level configuration.
type Config struct {
	ScheduleFile string `yaml:"schedule_file"`
	NotepadFile  string `yaml:"notepad_file"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		ScheduleFile: DefaultScheduleFile,
		NotepadFile:  DefaultNotepadFile,
		LogLevel:     "info",
	}
}

// LoadConfig reads path over the defaults. When required is false a missing
// file is not an error.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ScheduleFile) == "" {
		return errors.New("schedule_file cannot be empty")
	}
	if strings.TrimSpace(c.NotepadFile) == "" {
		return errors.New("notepad_file cannot be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; an empty value means info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
