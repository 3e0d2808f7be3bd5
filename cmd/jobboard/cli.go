package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/nixpig/jobboard/internal/dispatch"
	"github.com/spf13/cobra"
)

// TODO: Inject version at build time.
const version = "0.0.1"

// stdio is the path that selects stdin or stdout.
const stdio = "-"

func rootCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "jobboard [flags]",
		Short: "Run job board commands from a line-oriented input",
		Example: "  jobboard < commands.txt\n" +
			"  jobboard --input commands.txt --output results.txt --strict",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			return runSession(cmd, cfg)
		},
	}

	command.CompletionOptions.HiddenDefaultCmd = true

	registerFlags(command.Flags())

	return command
}

func runSession(cmd *cobra.Command, cfg *config) (err error) {
	logger := cfg.newLogger(cmd.ErrOrStderr()).With(
		"session", uuid.NewString(),
	)

	in := cmd.InOrStdin()
	if cfg.input != stdio {
		f, err := os.Open(cfg.input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()

		in = f
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.output != stdio {
		f, createErr := os.Create(cfg.output)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("close output: %w", closeErr))
			}
		}()

		out = f
	}

	session := dispatch.NewSession(
		dispatch.SessionConfig{
			Strict:         cfg.strict,
			RestrictSkills: cfg.restrictSkills,
		},
		logger,
	)

	if _, err := session.Run(cmd.Context(), in, out); err != nil {
		return err
	}

	return nil
}
