package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Locale    string
	Resources ResourcesConfig
	UI        UIConfig
	Database  DatabaseConfig
	History   HistoryConfig
	Log       LogConfig
}

// ResourcesConfig points at optional message file overrides.
type ResourcesConfig struct {
	Dir string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultIndex int  `mapstructure:"default_index"`
	AltScreen    bool `mapstructure:"alt_screen"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// HistoryConfig controls the view history.
type HistoryConfig struct {
	Enabled bool
	Limit   int
}

// LogConfig controls the log file. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"locale":     "locale",
	"resources":  "resources.dir",
	"db":         "database.path",
	"log-file":   "log.path",
	"log-level":  "log.level",
	"index":      "ui.default_index",
	"no-history": "history.disabled",
}

// AddFlags registers the flags Load understands.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to config file (default: $LOCALEDEMO_CONFIG or ~/.config/localedemo/config.toml)")
	fs.String("locale", "", "locale tag, or auto to read LANG")
	fs.String("resources", "", "directory with messages.<lang>.toml overrides")
	fs.String("db", "", "history database path")
	fs.String("log-file", "", "log file path")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.Int("index", 0, "initially selected country")
	fs.Bool("no-history", false, "do not record viewed countries")
}

// Load reads configuration from file, env and flags, in increasing order of
// precedence. Env var overrides use prefix LOCALEDEMO_. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("locale", "auto")
	v.SetDefault("resources.dir", "")
	v.SetDefault("ui.default_index", 0)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "localedemo", "history.db"))
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.disabled", false)
	v.SetDefault("history.limit", 20)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "localedemo", "localedemo.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LOCALEDEMO_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "localedemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LOCALEDEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist is an error; a missing default is not
		if !errors.As(err, &notFound) || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if v.GetBool("history.disabled") {
		c.History.Enabled = false
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the UI cannot work with.
func (c Config) Validate() error {
	if c.UI.DefaultIndex < 0 {
		return fmt.Errorf("ui.default_index must not be negative, got %d", c.UI.DefaultIndex)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	return nil
}
