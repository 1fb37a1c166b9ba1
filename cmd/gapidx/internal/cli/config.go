package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// configType is the config file format (component C11).
const configType = "yaml"

// Config supplies default gap bounds for query lines that omit them.
type Config struct {
	GMin int `mapstructure:"gmin"`
	GMax int `mapstructure:"gmax"`
}

// loadConfig loads defaults from configPath, following the teacher's
// loader shape (internal/config/loader.go): an explicit config file is
// never required, and a missing one is not an error.
func loadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("gmin", 0)
	v.SetDefault("gmax", 0)
	v.SetConfigType(configType)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
