// Package config resolves langctl settings from defaults, an optional YAML
// file, LANGCTL_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/langloader/pkg/i18n"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LANGCTL"

// Config holds the resolved settings.
type Config struct {
	Path        string   `mapstructure:"path"`
	Format      string   `mapstructure:"format"`
	SentryDSN   string   `mapstructure:"sentry_dsn"`
	Environment string   `mapstructure:"environment"`
	Langs       []string `mapstructure:"langs"`
	Namespaces  []string `mapstructure:"namespaces"`
	Debug       bool     `mapstructure:"debug"`
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if file == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return nil
}

// Load resolves the configuration. file may be empty. Only flags that were
// explicitly set on the command line override other sources.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("path", i18n.DefaultPath)
	v.SetDefault("format", string(i18n.FormatJSON))
	v.SetDefault("langs", []string{i18n.DefaultLang})
	v.SetDefault("namespaces", []string{i18n.DefaultNamespace})
	v.SetDefault("debug", false)
	v.SetDefault("sentry_dsn", "")
	v.SetDefault("environment", "production")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("sentry_dsn", EnvPrefix+"_SENTRY_DSN", "SENTRY_DSN"); err != nil {
		return Config{}, fmt.Errorf("binding environment: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	if flags != nil {
		for _, key := range []string{"path", "format", "langs", "namespaces", "debug"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// LoaderOptions converts the configuration into loader options.
func (c Config) LoaderOptions() ([]i18n.Option, error) {
	format, err := i18n.ParseFileFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return []i18n.Option{
		i18n.WithPath(c.Path),
		i18n.WithLanguages(c.Langs...),
		i18n.WithNamespaces(c.Namespaces...),
		i18n.WithFileFormat(format),
		i18n.WithDebug(c.Debug),
	}, nil
}
