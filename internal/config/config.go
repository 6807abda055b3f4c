package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "pullrefresh"

// Defaults applied by the Get* accessors.
const (
	DefaultTriggerHeight = 3 // rows
	DefaultPageSize      = 50
	DefaultResistance    = 0.5
)

type Config struct {
	Folder        string  `koanf:"folder"`         // directory to list; empty means cwd
	TriggerHeight float64 `koanf:"trigger_height"` // pull distance in rows that triggers a refresh
	PageSize      int     `koanf:"page_size"`      // entries loaded initially and per footer pull
	Resistance    float64 `koanf:"resistance"`     // overscroll damping (0-1], 1 follows the pointer
	Footer        *bool   `koanf:"footer"`         // enable pull-up to load more (default: true)
	Mouse         *bool   `koanf:"mouse"`          // enable mouse drag (default: true)
	Icons         string  `koanf:"icons"`          // "nerd", "unicode" or "none" (default)

	Log LogConfig `koanf:"log"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Debug bool   `koanf:"debug"`
	File  string `koanf:"file"` // default: $XDG_STATE_HOME/pullrefresh/pullrefresh.log
}

// Load reads the config files in priority order.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files, later ones overriding earlier ones.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Folder != "" {
		cfg.Folder = expandPath(cfg.Folder)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/pullrefresh/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetFolder returns the directory to list, falling back to the working directory.
func (c *Config) GetFolder() (string, error) {
	if c.Folder != "" {
		return c.Folder, nil
	}
	return os.Getwd()
}

// GetTriggerHeight returns the trigger height in rows.
func (c *Config) GetTriggerHeight() float64 {
	if c.TriggerHeight <= 0 {
		return DefaultTriggerHeight
	}
	return c.TriggerHeight
}

// GetPageSize returns the page size.
func (c *Config) GetPageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

// GetResistance returns the overscroll damping factor.
func (c *Config) GetResistance() float64 {
	if c.Resistance <= 0 || c.Resistance > 1 {
		return DefaultResistance
	}
	return c.Resistance
}

// FooterEnabled reports whether pulling up loads more entries.
func (c *Config) FooterEnabled() bool {
	return c.Footer == nil || *c.Footer
}

// MouseEnabled reports whether mouse drags drive the pane.
func (c *Config) MouseEnabled() bool {
	return c.Mouse == nil || *c.Mouse
}

// GetLogFile returns the debug log path.
func (c *Config) GetLogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
