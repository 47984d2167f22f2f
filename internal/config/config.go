package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/hoppxi/shades/pkg/backlight"
	"github.com/hoppxi/shades/pkg/operation"
)

const (
	KeyDevice   = "device"
	KeyWriter   = "writer"
	KeyOutput   = "output"
	KeyLogLevel = "log_level"
)

type Config struct {
	Device   string
	Writer   string
	Output   backlight.Format
	LogLevel zerolog.Level
}

// Dir returns the directory holding config.yaml.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "shades"), nil
}

// Load reads the config file and SHADES_* environment variables. An empty
// path means the default location, which is allowed to be missing.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyWriter, "sysfs")
	v.SetDefault(KeyOutput, string(backlight.FormatText))
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix("shades")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	output, err := backlight.ParseFormat(v.GetString(KeyOutput))
	if err != nil {
		return nil, err
	}

	writer := v.GetString(KeyWriter)
	if _, err := operation.NewPersister(writer); err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}

	return &Config{
		Device:   v.GetString(KeyDevice),
		Writer:   writer,
		Output:   output,
		LogLevel: level,
	}, nil
}
