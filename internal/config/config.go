package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/pager"
	"github.com/blackwell-systems/bookconnect/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bookconnect", "config.yml")
}

// Load reads the config from path, BOOKCONNECT_CONFIG, or the default
// location, with BOOKCONNECT_* environment overrides. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("catalog.path", "")
	v.SetDefault("display.page_size", pager.DefaultPageSize)
	v.SetDefault("display.theme", ThemeDay)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("BOOKCONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("BOOKCONNECT_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Catalog.Path = util.ExpandHome(cfg.Catalog.Path)
	cfg.Log.File = util.ExpandHome(cfg.Log.File)
	cfg.Display.Theme = strings.ToLower(cfg.Display.Theme)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config as YAML to path.
func Save(cfg *Config, path string) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return enc.Close()
}
