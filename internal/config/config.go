// Package config resolves calcui settings from flags, CALCUI_* environment
// variables, an optional YAML file and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by viper. Flags of the same name bind to them.
const (
	KeyTheme        = "theme"
	KeyLogLevel     = "log-level"
	KeyLogFile      = "log-file"
	KeyOTLPEndpoint = "otlp-endpoint"
	KeyServiceName  = "service-name"
)

// EnvPrefix namespaces environment overrides: CALCUI_THEME, CALCUI_LOG_LEVEL, ...
const EnvPrefix = "CALCUI"

// Config is the resolved application configuration.
type Config struct {
	Theme        string `mapstructure:"theme"`
	LogLevel     string `mapstructure:"log-level"`
	LogFile      string `mapstructure:"log-file"`
	OTLPEndpoint string `mapstructure:"otlp-endpoint"`
	ServiceName  string `mapstructure:"service-name"`
}

// NewViper returns a viper instance with defaults and environment binding.
// The OTLP settings also honor the standard OTEL_* variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTheme, "dark")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyOTLPEndpoint, "")
	v.SetDefault(KeyServiceName, "calcui")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyOTLPEndpoint, EnvPrefix+"_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv(KeyServiceName, EnvPrefix+"_SERVICE_NAME", "OTEL_SERVICE_NAME")
	return v
}

// Load reads the config file (if any) into v and returns the validated
// result. An explicit file must exist; the default location is optional.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "calcui"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q: want dark or light", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: want debug, info, warn or error", c.LogLevel)
	}
	return nil
}

// LoadDotEnv loads environment variables from path when present.
// Existing process environment variables are not overridden.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
