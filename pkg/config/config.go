// Package config loads pagecheck settings from defaults, an optional YAML
// file, PAGECHECK_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/vertti/pagecheck/pkg/logging"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. PAGECHECK_STRICT.
	EnvPrefix = "PAGECHECK"

	// FileName is the config file looked up in the site root, then in the
	// working directory.
	FileName = ".pagecheck"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Root    string        `mapstructure:"root" yaml:"root"`
	Strict  bool          `mapstructure:"strict" yaml:"strict"`
	Color   bool          `mapstructure:"color" yaml:"color"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig contains diagnostic logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Load reads configuration into v and returns the merged result. When
// configFile is empty .pagecheck.yaml is searched for in searchDirs, in
// order, defaulting to the working directory; a missing file is not an
// error. An explicit file must exist.
func Load(v *viper.Viper, configFile string, searchDirs ...string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if len(searchDirs) == 0 {
			searchDirs = []string{"."}
		}
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		for _, dir := range searchDirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", "")
	v.SetDefault("strict", false)
	v.SetDefault("color", true)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v (want one of %s)",
			ErrInvalidConfig, err, strings.Join(logging.Levels, ", "))
	}
	if !slices.Contains(logging.Formats, c.Logging.Format) {
		return fmt.Errorf("%w: logging.format %q (want one of %s)",
			ErrInvalidConfig, c.Logging.Format, strings.Join(logging.Formats, ", "))
	}
	return nil
}
