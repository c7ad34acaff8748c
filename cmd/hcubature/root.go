package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    Config
	logger *logrus.Logger
}

// newRootCmd builds the command tree. Each call owns a fresh viper
// instance, so commands can be constructed repeatedly in tests.
func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:   "hcubature",
		Short: "Adaptive multidimensional integration over hyper-rectangles",
		Long: `hcubature runs the adaptive h-cubature engine (Gauss–Kronrod in 1-D,
Genz–Malik in higher dimensions) on the Genz test families and compares
the result with the closed-form integral.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	pf.StringP("output", "o", outputText, "output format: text, yaml, json")
	_ = a.v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("output", pf.Lookup("output"))

	root.AddCommand(newIntegrateCmd(a), newRuleCmd(a))

	return root
}

// bindFlags binds every flag of fs to prefix.<name>, with dashes in the
// flag name mapped to underscores.
func bindFlags(v *viper.Viper, prefix string, fs *pflag.FlagSet) {
	fs.VisitAll(func(fl *pflag.Flag) {
		_ = v.BindPFlag(prefix+"."+strings.ReplaceAll(fl.Name, "-", "_"), fl)
	})
}

// setup resolves configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if a.cfg, err = loadConfig(a.v, path); err != nil {
		return err
	}
	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel)
	a.logger.WithFields(logrus.Fields{
		"config": a.v.ConfigFileUsed(),
		"output": a.cfg.Output,
	}).Debug("hcubature: configuration loaded")

	return nil
}

// newLogger returns a text logger on w; level was validated by loadConfig.
func newLogger(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// writeReport renders report in the configured format; text delegates to
// the report's own layout.
func writeReport(w io.Writer, format string, report interface{}, text func(io.Writer) error) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("hcubature: encode yaml: %w", err)
		}

		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	default:
		return text(w)
	}
}
