package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Configuration struct {
	// CatalogFile holds the course records the catalog is loaded from.
	CatalogFile string `yaml:"catalog_file" env:"WOLF_CATALOG_FILE"`

	// ExportFile is the default destination of the exported schedule.
	ExportFile string `yaml:"export_file" env:"WOLF_EXPORT_FILE"`

	// Delimiter separates fields in course record files.
	Delimiter string `yaml:"delimiter" env:"WOLF_DELIMITER"`

	// MaxCredits is the credit load above which the schedule report fails.
	MaxCredits int `yaml:"max_credits" env:"WOLF_MAX_CREDITS"`

	// ScheduleTitle is the title given to a new schedule.
	ScheduleTitle string `yaml:"schedule_title" env:"WOLF_SCHEDULE_TITLE"`

	LogLevel  string `yaml:"log_level" env:"WOLF_LOG_LEVEL"`
	LogPretty bool   `yaml:"log_pretty" env:"WOLF_LOG_PRETTY"`
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		CatalogFile:   "./res/course_records.txt",
		ExportFile:    "schedule.txt",
		Delimiter:     ",",
		MaxCredits:    18,
		ScheduleTitle: "My Schedule",
		LogLevel:      "info",
		LogPretty:     true,
	}
}

// Load starts from the defaults, applies the YAML file at path when it
// exists and finally the environment.
func Load(path string) (*Configuration, error) {
	cfg := NewDefaultConfiguration()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("could not stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DelimiterRune returns the first rune of Delimiter.
func (c *Configuration) DelimiterRune() rune {
	return []rune(c.Delimiter)[0]
}

func (c *Configuration) validate() error {
	if c.CatalogFile == "" {
		return errors.New("catalog file is required")
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.MaxCredits <= 0 {
		return errors.New("max credits must be positive")
	}
	return nil
}
