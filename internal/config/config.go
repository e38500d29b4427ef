// Package config loads csvtbl settings from flags, environment variables and
// an optional config file.
//
// Precedence, highest first: command-line flags, CSVTBL_* environment
// variables, the config file, built-in defaults. Nested keys use "_" in
// environment names, so log.level is read from CSVTBL_LOG_LEVEL.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CSVTBL"

// DefaultFileName is looked up in the home directory when no config file
// is given explicitly.
const DefaultFileName = ".csvtbl.yaml"

// Defaults.
const (
	DefaultTableFormat = "grid"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// ErrInvalidDelimiter is returned when the delimiter setting cannot be used
// as a CSV field separator.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// Config holds the resolved settings.
type Config struct {
	TableFormat string    `mapstructure:"tablefmt"`
	Delimiter   string    `mapstructure:"delimiter"`
	Sanitize    bool      `mapstructure:"sanitize"`
	Log         LogConfig `mapstructure:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"tablefmt":   "tablefmt",
	"delimiter":  "delimiter",
	"sanitize":   "sanitize",
	"log.level":  "log-level",
	"log.format": "log-format",
}

// Load resolves the configuration. flags may be nil; flags it does not
// define are ignored. When configFile is empty, $HOME/.csvtbl.yaml is read
// if it exists.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("tablefmt", DefaultTableFormat)
	v.SetDefault("delimiter", "")
	v.SetDefault("sanitize", false)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	path := filepath.Join(home, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Validate checks settings that would otherwise fail deep inside a reader.
func (c *Config) Validate() error {
	_, err := c.DelimiterRune()
	return err
}

// DelimiterRune returns the configured field separator, or 0 when unset so
// readers pick their per-format default. "tab" and `\t` mean a tab.
func (c *Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidDelimiter, c.Delimiter)
	}

	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q cannot separate fields", ErrInvalidDelimiter, c.Delimiter)
	}
	return r, nil
}
