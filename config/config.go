// Package config loads cyclostat settings: the data directory, the raw-row
// page size, and the city → trip-log registry.
//
// Precedence, lowest to highest: built-in defaults, an optional
// cyclostat.yaml, CYCLOSTAT_* environment variables, command-line flags
// (applied by the CLI layer).
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// ErrUnknownCity is returned when a city has no registered trip log.
// The interactive session treats it as a re-promptable condition.
var ErrUnknownCity = errors.New("config: unknown city")

// DefaultFile is the config file name searched for in the working directory.
const DefaultFile = "cyclostat.yaml"

// Config holds resolved settings.
type Config struct {
	DataDir  string            `mapstructure:"data_dir"`
	PageSize int               `mapstructure:"page_size"`
	Cities   map[string]string `mapstructure:"cities"`
}

// Load reads configuration from the given file path. An empty path searches
// the working directory for DefaultFile; a missing file is not an error and
// yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", ".")
	v.SetDefault("page_size", 5)
	v.SetDefault("cities", map[string]string{
		"chicago":       "chicago.csv",
		"new york city": "new_york_city.csv",
		"washington":    "washington.csv",
	})

	v.SetEnvPrefix("CYCLOSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(" ", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, filepath.Ext(DefaultFile)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read %s: %w", DefaultFile, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 5
	}
	return cfg, nil
}

// CityFile resolves a city name to its trip-log path under DataDir.
// Matching ignores case and surrounding whitespace.
func (c *Config) CityFile(city string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(city))
	file, ok := c.Cities[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %s)", ErrUnknownCity, city, strings.Join(c.CityNames(), ", "))
	}
	return filepath.Join(c.DataDir, file), nil
}

// CityNames returns the registered city names, sorted.
func (c *Config) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for name := range c.Cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
