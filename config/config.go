// Package config resolves run settings from defaults, an optional YAML file,
// NBCLASSIFY_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hickeroar/nbclassify/report"
)

// EnvPrefix prefixes every environment override, e.g. NBCLASSIFY_LOG_LEVEL.
const EnvPrefix = "NBCLASSIFY"

// Keys shared by flags, the config file and the environment.
const (
	KeyLogLevel    = "log-level"
	KeyOutput      = "output"
	KeyScoring     = "scoring"
	KeyMetricsFile = "metrics-file"
	KeyNoColor     = "no-color"
)

// Scoring modes for the smoothed and tf-idf estimators.
const (
	// ScoringReference adds log estimates to the linear prior.
	ScoringReference = "reference"
	// ScoringLog adds log estimates to the log prior.
	ScoringLog = "log"
)

const defaultLogLevel = "warn"

// Validation errors returned by Load.
var (
	ErrInvalidOutput   = errors.New("invalid output format")
	ErrInvalidScoring  = errors.New("invalid scoring mode")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds the resolved settings of a run.
type Config struct {
	LogLevel    string `mapstructure:"log-level"`
	Output      string `mapstructure:"output"`
	Scoring     string `mapstructure:"scoring"`
	MetricsFile string `mapstructure:"metrics-file"`
	NoColor     bool   `mapstructure:"no-color"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyOutput, report.FormatText)
	v.SetDefault(KeyScoring, ScoringReference)
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterFlags adds the configuration flags to fs and binds them to v.
func RegisterFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String(KeyLogLevel, defaultLogLevel, "log level (debug, info, warn, error, disabled)")
	fs.StringP(KeyOutput, "o", report.FormatText, "report format (text, json, yaml)")
	fs.String(KeyScoring, ScoringReference, "score combination for mest and tfidf (reference, log)")
	fs.String(KeyMetricsFile, "", "write Prometheus metrics for the run to this textfile")
	fs.Bool(KeyNoColor, false, "disable colored output")

	for _, key := range []string{KeyLogLevel, KeyOutput, KeyScoring, KeyMetricsFile, KeyNoColor} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// MustRegisterFlags is like RegisterFlags but panics if a flag cannot be bound.
func MustRegisterFlags(v *viper.Viper, fs *pflag.FlagSet) {
	if err := RegisterFlags(v, fs); err != nil {
		panic(err)
	}
}

// Load reads the optional config file at path and returns the validated
// settings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}

	switch c.Scoring {
	case ScoringReference, ScoringLog:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScoring, c.Scoring)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}
