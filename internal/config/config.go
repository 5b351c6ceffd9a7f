package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Output formats understood by the tail command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	envPrefix    = "RINGTAIL"
	defaultLines = 10
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the ringtail command.
type Config struct {
	// Lines is the capacity of the buffer: how many trailing lines are kept.
	Lines     int    `mapstructure:"lines"`
	Format    string `mapstructure:"format"`
	Reverse   bool   `mapstructure:"reverse"`
	Sort      bool   `mapstructure:"sort"`
	Number    bool   `mapstructure:"number"`
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log-format"`
}

// Loader reads Config from defaults, an optional config file, RINGTAIL_*
// environment variables and whatever flags were bound to its viper instance.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// LoaderOption defines a functional option for configuring a Loader.
type LoaderOption func(*Loader)

// WithConfigFile sets the config file to read. YAML, TOML and JSON are
// recognized by extension.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// NewLoader creates a Loader on top of v.
func NewLoader(v *viper.Viper, opts ...LoaderOption) *Loader {
	l := &Loader{v: v}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()
	l.v.SetEnvPrefix(envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", l.configFile)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) setDefaults() {
	l.v.SetDefault("lines", defaultLines)
	l.v.SetDefault("format", FormatText)
	l.v.SetDefault("reverse", false)
	l.v.SetDefault("sort", false)
	l.v.SetDefault("number", false)
	l.v.SetDefault("debug", false)
	l.v.SetDefault("log-format", FormatText)
}

// Validate rejects a non-positive capacity and unknown formats, which would
// otherwise reach the buffer or the renderer.
func (c *Config) Validate() error {
	if c.Lines <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "lines must be positive, got %d", c.Lines)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown format %q", c.Format)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown log format %q", c.LogFormat)
	}
	if c.Sort && c.Reverse {
		return errors.Wrap(ErrInvalidConfig, "sort and reverse are mutually exclusive")
	}
	return nil
}
