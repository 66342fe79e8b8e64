// Package config provides configuration management for mayura using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration system supports YAML files, environment variable overrides
// with the MAYURA_ prefix, and validation. It manages server settings, the
// showcase fixtures and paging, and logging.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MAYURA_SERVER_PORT.
const EnvPrefix = "MAYURA"

// ConfigFileEnv names an alternative config file.
const ConfigFileEnv = "MAYURA_CONFIG_FILE"

// DefaultConfigName is the config file searched for in the working directory.
const DefaultConfigName = ".mayura"

type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Showcase ShowcaseConfig `mapstructure:"showcase" yaml:"showcase"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host" yaml:"host" validate:"required,safe_host"`
	Port           int      `mapstructure:"port" yaml:"port" validate:"min=0,max=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins" validate:"dive,origin"`
	// EventsPerSecond caps the events one websocket client may send; 0 is
	// unlimited.
	EventsPerSecond int `mapstructure:"events_per_second" yaml:"events_per_second" validate:"min=0,max=10000"`
}

// Address returns host:port for net.Listen.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type ShowcaseConfig struct {
	// Fixtures is a YAML file with demo data; empty uses the built-in set.
	Fixtures       string `mapstructure:"fixtures" yaml:"fixtures" validate:"omitempty,safe_path"`
	PageSize       int    `mapstructure:"page_size" yaml:"page_size" validate:"min=1,max=1000"`
	MaxPageNumbers int    `mapstructure:"max_page_numbers" yaml:"max_page_numbers" validate:"min=3,max=50"`
	Watch          bool   `mapstructure:"watch" yaml:"watch"`
	Locale         string `mapstructure:"locale" yaml:"locale" validate:"oneof=en es"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
	// File additionally receives JSON logs when set.
	File string `mapstructure:"file" yaml:"file"`
}

// SetDefaults registers default values on v. Explicit settings, env vars and
// bound flags take precedence.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.events_per_second", 50)
	v.SetDefault("showcase.fixtures", "")
	v.SetDefault("showcase.page_size", 5)
	v.SetDefault("showcase.max_page_numbers", 5)
	v.SetDefault("showcase.watch", true)
	v.SetDefault("showcase.locale", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// BindEnv enables MAYURA_<SECTION>_<KEY> overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals v, applies defaults and validates the result.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// viper does not always decode a comma separated env value into a slice
	if v.IsSet("server.allowed_origins") && len(config.Server.AllowedOrigins) == 0 {
		config.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	cfg, err := LoadFrom(v)
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not validate: %v", err))
	}
	return cfg
}
