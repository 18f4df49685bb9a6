package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Library LibraryConfig
	Log     LogConfig
	UI      UIConfig
	Watch   WatchConfig
}

// LibraryConfig holds sqlite settings for the recent-documents store.
type LibraryConfig struct {
	Path string
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Style        string `mapstructure:"style"`         // glamour style name; empty means auto
	CompactWidth int    `mapstructure:"compact_width"` // below this width the navigator pins at column 0
	ScrollMargin int    `mapstructure:"scroll_margin"` // rows kept above a section after a jump
}

// WatchConfig holds live-reload settings.
type WatchConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	DebounceMS int  `mapstructure:"debounce_ms"`
}

// Load reads configuration from file and env. Env var overrides use prefix NAVIHIVE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("library.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "navihive", "library.db"))
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "navihive", "navihive.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.style", "")
	v.SetDefault("ui.compact_width", 80)
	v.SetDefault("ui.scroll_margin", 2)
	v.SetDefault("watch.enabled", true)
	v.SetDefault("watch.debounce_ms", 400)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NAVIHIVE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "navihive"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NAVIHIVE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
