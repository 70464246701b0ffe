// Package config loads the signup service configuration with viper: built-in
// defaults, an optional YAML file and SIGNUP_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SIGNUP_SERVER_ADDR.
const EnvPrefix = "SIGNUP"

// Config is the complete service configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
	Render RenderConfig `mapstructure:"render"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr  string        `mapstructure:"addr"`
	Grace time.Duration `mapstructure:"grace"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig points at an optional UI schema document replacing the embedded
// one.
type UIConfig struct {
	Schema string `mapstructure:"schema"`
}

// RenderConfig selects the renderer used for GET and POST responses.
type RenderConfig struct {
	Renderer string `mapstructure:"renderer"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", Grace: 5 * time.Second},
		Log:    LogConfig{Level: "info", Format: "json"},
		Render: RenderConfig{Renderer: "vanilla"},
	}
}

// SetDefaults registers the defaults on v so they apply without a file.
func SetDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.grace", defaults.Server.Grace)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("ui.schema", defaults.UI.Schema)
	v.SetDefault("render.renderer", defaults.Render.Renderer)
}

// NewViper returns a viper instance with defaults and environment overrides.
// When cfgFile is set it must be readable; otherwise signup.yaml in the
// working directory is used when present.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
		return v, nil
	}

	v.SetConfigName("signup")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read signup.yaml: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.Render.Renderer = strings.TrimSpace(cfg.Render.Renderer)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}
