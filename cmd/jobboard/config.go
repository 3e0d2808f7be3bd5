package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to flag names to form environment variable names,
// e.g. --restrict-skills is read from JOBBOARD_RESTRICT_SKILLS.
const envPrefix = "JOBBOARD"

type config struct {
	input          string
	output         string
	strict         bool
	restrictSkills bool
	logLevel       slog.Level
	logFormat      string
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to config file (toml, yaml or json)")

	flags.StringP("input", "i", "-", "Path to read commands from, - for stdin")
	flags.StringP("output", "o", "-", "Path to write output to, - for stdout")

	flags.Bool(
		"strict",
		false,
		"Stop at the first malformed command instead of skipping it",
	)

	flags.Bool(
		"restrict-skills",
		false,
		"Reject skills that aren't in the vocabulary given in the input header",
	)

	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
}

// loadConfig resolves the config from, in order of precedence, flags set on
// the command line, environment variables, the config file and flag defaults.
func loadConfig(flags *pflag.FlagSet) (*config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &config{
		input:          v.GetString("input"),
		output:         v.GetString("output"),
		strict:         v.GetBool("strict"),
		restrictSkills: v.GetBool("restrict-skills"),
		logFormat:      v.GetString("log-format"),
	}

	if err := cfg.logLevel.UnmarshalText(
		[]byte(v.GetString("log-level")),
	); err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) validate() error {
	if c.input == "" {
		return errors.New("input cannot be empty")
	}

	if c.output == "" {
		return errors.New("output cannot be empty")
	}

	if c.logFormat != "text" && c.logFormat != "json" {
		return fmt.Errorf("log-format must be text or json: got %q", c.logFormat)
	}

	return nil
}

// newLogger creates a logger writing to w. Logs never go to the command
// output.
func (c *config) newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.logLevel}

	if c.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
