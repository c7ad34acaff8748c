package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides: integrate.max_eval is read
// from HCUBATURE_INTEGRATE_MAX_EVAL.
const envPrefix = "HCUBATURE"

// Output formats.
const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

var (
	errBadOutput   = errors.New("hcubature: output must be text, yaml or json")
	errBadLogLevel = errors.New("hcubature: unknown log level")
)

// Config is the fully resolved configuration of one invocation.
type Config struct {
	LogLevel  string          `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Output    string          `mapstructure:"output" yaml:"output" json:"output"`
	Integrate IntegrateConfig `mapstructure:"integrate" yaml:"integrate" json:"integrate"`
	Rule      RuleConfig      `mapstructure:"rule" yaml:"rule" json:"rule"`
}

// IntegrateConfig drives the integrate command.
type IntegrateConfig struct {
	Family     string  `mapstructure:"family" yaml:"family" json:"family"`
	Dim        int     `mapstructure:"dim" yaml:"dim" json:"dim"`
	Seed       int64   `mapstructure:"seed" yaml:"seed" json:"seed"`
	Difficulty float64 `mapstructure:"difficulty" yaml:"difficulty" json:"difficulty"` // 0 = family default
	MaxEval    int     `mapstructure:"max_eval" yaml:"max_eval" json:"max_eval"`
	AbsTol     float64 `mapstructure:"abs_tol" yaml:"abs_tol" json:"abs_tol"`
	RelTol     float64 `mapstructure:"rel_tol" yaml:"rel_tol" json:"rel_tol"`
	Concurrent bool    `mapstructure:"concurrent" yaml:"concurrent" json:"concurrent"`
}

// RuleConfig drives the rule command.
type RuleConfig struct {
	Dim int `mapstructure:"dim" yaml:"dim" json:"dim"`
}

// newViper returns an isolated viper instance with defaults and
// environment lookup configured.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("output", outputText)

	v.SetDefault("integrate.family", "gaussian")
	v.SetDefault("integrate.dim", 3)
	v.SetDefault("integrate.seed", 0)
	v.SetDefault("integrate.difficulty", 0.0)
	v.SetDefault("integrate.max_eval", 100000)
	v.SetDefault("integrate.abs_tol", 0.0)
	v.SetDefault("integrate.rel_tol", 1e-6)
	v.SetDefault("integrate.concurrent", false)

	v.SetDefault("rule.dim", 3)
}

// loadConfig reads the optional config file and resolves every setting
// with flag > env > file > default precedence.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("hcubature: read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("hcubature: decode config: %w", err)
	}
	cfg.Output = strings.ToLower(cfg.Output)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate checks the CLI-only settings. Numeric ranges are left to the
// cubature and genz packages, which report them with their own sentinels.
func (c Config) validate() error {
	switch c.Output {
	case outputText, outputYAML, outputJSON:
	default:
		return fmt.Errorf("%w: %q", errBadOutput, c.Output)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", errBadLogLevel, c.LogLevel)
	}

	return nil
}
