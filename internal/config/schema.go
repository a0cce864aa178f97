package config

import (
	"errors"
	"fmt"
)

// Theme names accepted by display.theme.
const (
	ThemeDay   = "day"
	ThemeNight = "night"
)

// Config is the top-level bookconnect configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// CatalogConfig selects the dataset.
type CatalogConfig struct {
	Path string `mapstructure:"path" yaml:"path,omitempty"` // empty = embedded dataset
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	PageSize int    `mapstructure:"page_size" yaml:"page_size"`
	Theme    string `mapstructure:"theme" yaml:"theme"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file,omitempty"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Validate rejects settings the browser cannot honor.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("display.page_size must be positive, got %d", c.Display.PageSize))
	}
	if !ValidTheme(c.Display.Theme) {
		errs = append(errs, fmt.Errorf("display.theme must be %q or %q, got %q", ThemeDay, ThemeNight, c.Display.Theme))
	}
	return errors.Join(errs...)
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	return name == ThemeDay || name == ThemeNight
}
