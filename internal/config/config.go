// Package config loads settings for the flex command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "FLEX_CONFIG"

// Config holds command configuration.
type Config struct {
	Output OutputConfig
	Log    LogConfig
}

// OutputConfig holds snapshot output settings.
type OutputConfig struct {
	Format string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. The file is FLEX_CONFIG if set,
// otherwise go-flex/config.toml under the user config dir. Env var overrides
// use prefix FLEX_, e.g. FLEX_OUTPUT_FORMAT=yaml.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvConfig)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "go-flex"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FLEX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit path must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
	return c, nil
}
