package dispatch_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/nixpig/jobboard/internal/dispatch"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	t.Run("Test blank lines", func(t *testing.T) {
		t.Parallel()

		for _, line := range []string{"", "   ", "\t"} {
			if _, ok := dispatch.ParseCommand(line); ok {
				t.Errorf("expected blank line '%q' not to parse", line)
			}
		}
	})

	t.Run("Test fields", func(t *testing.T) {
		t.Parallel()

		cmd, ok := dispatch.ParseCommand("  ADD-JOB-SKILL\t1   java ")
		if !ok {
			t.Fatal("expected line to parse")
		}

		if cmd.Name != dispatch.CommandAddJobSkill {
			t.Errorf("expected name: got '%s', want '%s'", cmd.Name, dispatch.CommandAddJobSkill)
		}

		if want := []string{"1", "java"}; !slices.Equal(cmd.Args, want) {
			t.Errorf("expected args: got '%v', want '%v'", cmd.Args, want)
		}
	})

	t.Run("Test arguments", func(t *testing.T) {
		t.Parallel()

		cmd := dispatch.Command{
			Name: dispatch.CommandView,
			Args: []string{"12", "x", "-7", "99999999999999999999999", "+3"},
		}

		scenarios := map[string]struct {
			index   int
			want    int
			wantErr bool
		}{
			"Integer":           {index: 0, want: 12},
			"Not an integer":    {index: 1, wantErr: true},
			"Negative":          {index: 2, want: -7},
			"Overflow is clamp": {index: 3, want: math.MaxInt},
			"Explicit sign":     {index: 4, want: 3},
			"Missing":           {index: 5, wantErr: true},
		}

		for scenario, config := range scenarios {
			t.Run(scenario, func(t *testing.T) {
				t.Parallel()

				got, err := cmd.Int(config.index)

				if config.wantErr {
					var syntaxErr *dispatch.SyntaxError
					if !errors.As(err, &syntaxErr) {
						t.Errorf("expected to receive SyntaxError: got '%v'", err)
					}

					return
				}

				if err != nil {
					t.Errorf("expected not to receive error: got '%v'", err)
				}

				if got != config.want {
					t.Errorf("expected value: got '%d', want '%d'", got, config.want)
				}
			})
		}
	})
}
