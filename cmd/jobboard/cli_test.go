package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `2
java python
3
ADD-JOB Dev 20 40 FULLTIME 50000
ADD-JOB-SKILL 1 java
JOB-STATUS 1
`

const exampleOutput = "Job ID is 1\nSkill added to job\nDev-0-(java,0)\n"

func executeTestCmd(
	t *testing.T,
	stdin string,
	args ...string,
) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := rootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), stderr.String(), err
}

func TestCLI(t *testing.T) {
	t.Parallel()

	t.Run("Test stdin to stdout", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := executeTestCmd(t, exampleInput)
		require.NoError(t, err)

		assert.Equal(t, exampleOutput, stdout)
		assert.Empty(t, stderr)
	})

	t.Run("Test files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		inputPath := filepath.Join(dir, "input.txt")
		outputPath := filepath.Join(dir, "output.txt")

		require.NoError(t, os.WriteFile(inputPath, []byte(exampleInput), 0644))

		stdout, _, err := executeTestCmd(
			t,
			"",
			"--input", inputPath,
			"--output", outputPath,
		)
		require.NoError(t, err)
		assert.Empty(t, stdout)

		got, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, exampleOutput, string(got))
	})

	t.Run("Test missing input file", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeTestCmd(
			t,
			"",
			"--input", filepath.Join(t.TempDir(), "missing.txt"),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open input")
	})

	t.Run("Test strict mode", func(t *testing.T) {
		t.Parallel()

		input := "0\n\n2\nADD-JOB Dev\nJOB-STATUS 1\n"

		stdout, _, err := executeTestCmd(t, input, "--strict")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed ADD-JOB command")
		assert.Empty(t, stdout)

		stdout, _, err = executeTestCmd(t, input)
		require.NoError(t, err)
		assert.Equal(t, "Invalid job ID\n", stdout)
	})

	t.Run("Test logs go to stderr", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := executeTestCmd(
			t,
			exampleInput,
			"--log-level", "info",
			"--log-format", "json",
		)
		require.NoError(t, err)

		assert.Equal(t, exampleOutput, stdout)
		assert.Contains(t, stderr, `"msg":"session complete"`)
		assert.Contains(t, stderr, `"session":`)
	})

	t.Run("Test invalid flags", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeTestCmd(t, exampleInput, "--log-format", "xml")
		assert.ErrorContains(t, err, "log-format")

		_, _, err = executeTestCmd(t, exampleInput, "--log-level", "loud")
		assert.ErrorContains(t, err, "log-level")

		_, _, err = executeTestCmd(t, exampleInput, "unexpected")
		assert.Error(t, err)
	})

	t.Run("Test config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "jobboard.toml")
		require.NoError(t, os.WriteFile(
			path,
			[]byte("restrict-skills = true\nlog-level = \"debug\"\n"),
			0644,
		))

		input := "1\njava\n2\nADD-USER Ann 30 PROJECT 0\nADD-USER-SKILL 1 go\n"

		stdout, stderr, err := executeTestCmd(t, input, "--config", path)
		require.NoError(t, err)

		assert.Equal(t, "User ID is 1\nSkill not in vocabulary\n", stdout)
		assert.Contains(t, stderr, "level=DEBUG")
	})

	t.Run("Test flags override config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "jobboard.yaml")
		require.NoError(t, os.WriteFile(path, []byte("restrict-skills: true\n"), 0644))

		input := "1\njava\n1\nADD-USER Ann 30 PROJECT 0\n"

		stdout, _, err := executeTestCmd(
			t,
			input,
			"--config", path,
			"--restrict-skills=false",
		)
		require.NoError(t, err)
		assert.Equal(t, "User ID is 1\n", stdout)
	})
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("JOBBOARD_RESTRICT_SKILLS", "true")
	t.Setenv("JOBBOARD_LOG_LEVEL", "error")

	cmd := rootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadConfig(cmd.Flags())
	require.NoError(t, err)

	assert.True(t, cfg.restrictSkills)
	assert.False(t, cfg.strict)
	assert.Equal(t, slog.LevelError, cfg.logLevel)
	assert.Equal(t, "-", cfg.input)
	assert.Equal(t, "text", cfg.logFormat)
}
