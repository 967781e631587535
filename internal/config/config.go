// Package config loads the command line configuration: defaults, an optional
// config file, MCIS_* environment variables and command flags, in increasing
// order of precedence.
package config

import (
	stderrors "errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	mcis "github.com/Arnyev/Max-Common-Subgraph"
	"github.com/Arnyev/Max-Common-Subgraph/csvgraph"
)

// EnvPrefix prefixes every environment variable, e.g. MCIS_STEP_SIZE.
const EnvPrefix = "MCIS"

// Config holds all application configuration.
type Config struct {
	Delimiter string        `mapstructure:"delimiter"`
	StepSize  int           `mapstructure:"step_size"`
	Algorithm string        `mapstructure:"algorithm"`
	Output    string        `mapstructure:"output"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Log       LogConfig     `mapstructure:"log"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command flag names to configuration keys.
var flagKeys = map[string]string{
	"delimiter":  "delimiter",
	"step":       "step_size",
	"algo":       "algorithm",
	"output":     "output",
	"timeout":    "timeout",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Delimiter: ",",
		StepSize:  4,
		Algorithm: "1",
		Timeout:   0,
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load resolves the configuration. path may be empty (no config file); fs is
// the filesystem the config file is read from; flags may be nil. Only flags
// explicitly set on the command line override lower layers.
func Load(fs afero.Fs, path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	def := Default()
	v.SetDefault("delimiter", def.Delimiter)
	v.SetDefault("step_size", def.StepSize)
	v.SetDefault("algorithm", def.Algorithm)
	v.SetDefault("output", def.Output)
	v.SetDefault("timeout", def.Timeout)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "binding flag %s", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field and reports all problems at once. Sentinel
// errors from the parsers stay in the chain, so errors.Is sees through it.
func (c *Config) Validate() error {
	var problems []error

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		problems = append(problems, errors.Errorf("delimiter %q must be a single character", c.Delimiter))
	} else if err := csvgraph.ValidDelimiter(c.DelimiterRune()); err != nil {
		problems = append(problems, err)
	}
	if c.StepSize < 1 {
		problems = append(problems, errors.Errorf("step size %d must be positive", c.StepSize))
	}
	if _, err := mcis.ParseAlgorithm(c.Algorithm); err != nil {
		problems = append(problems, err)
	}
	if c.Timeout < 0 {
		problems = append(problems, errors.Errorf("timeout %s is negative", c.Timeout))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		problems = append(problems, errors.Errorf("log format %q is not text or json", c.Log.Format))
	}

	if len(problems) > 0 {
		return errors.WithMessage(stderrors.Join(problems...), "invalid configuration")
	}

	return nil
}

// DelimiterRune returns the first rune of Delimiter.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)

	return r
}

// AlgorithmID parses Algorithm; Validate guarantees it succeeds.
func (c *Config) AlgorithmID() mcis.Algorithm {
	a, _ := mcis.ParseAlgorithm(c.Algorithm)

	return a
}

// NewLogger builds a logger from the log section.
func (c *Config) NewLogger() (*log.Logger, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	l := log.New()
	l.SetLevel(lvl)
	if c.Log.Format == "json" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	return l, nil
}
