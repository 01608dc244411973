// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	InputPath     string `mapstructure:"INPUT_PATH"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environment   string `mapstructure:"GO_ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	StrictParse   bool   `mapstructure:"STRICT_PARSE"`
}

// Defaults applied when neither the config file nor the environment sets a key.
var Defaults = map[string]any{
	"INPUT_PATH":     "transactions.csv",
	"SERVER_ADDRESS": "0.0.0.0:8080",
	"GO_ENV":         "production",
	"LOG_LEVEL":      "info",
	"STRICT_PARSE":   false,
}

// Load reads configuration from app.env in path and from environment variables.
// A missing config file is not an error.
func Load(path string) (Config, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith is like Load but uses v, which may already carry bound flags.
func LoadWith(v *viper.Viper, path string) (Config, error) {
	var c Config

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
