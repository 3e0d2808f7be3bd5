package dispatch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nixpig/jobboard/internal/board"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// SessionConfig configures a Session.
type SessionConfig struct {
	// Strict stops the run at the first malformed command line instead of
	// skipping it.
	Strict bool

	// RestrictSkills rejects skills that aren't in the vocabulary read from the
	// header.
	RestrictSkills bool
}

// Session runs the command protocol over an input and an output stream.
//
// The input starts with a header of three lines: the number of skills K, a
// line of skill tokens of which the first K form the vocabulary, and the
// number of commands N. The N command lines follow.
type Session struct {
	cfg    SessionConfig
	logger *slog.Logger
}

// Summary describes a completed run.
type Summary struct {
	Commands int
	Skipped  int
	Jobs     int
	Users    int
}

// NewSession creates a Session with the given config.
func NewSession(cfg SessionConfig, logger *slog.Logger) *Session {
	return &Session{cfg: cfg, logger: logger}
}

// Run reads the header and the commands from r, runs them against a new
// board.Manager and writes output lines to w.
//
// A run that ends before N commands have been read is not an error. The
// context is checked between commands.
func (s *Session) Run(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
) (summary *Summary, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil {
			err = errors.Join(err, fmt.Errorf("flush output: %w", flushErr))
		}
	}()

	vocabulary, commandCount, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}

	manager := board.NewManager(
		board.WithVocabulary(vocabulary),
		board.WithRestrictedSkills(s.cfg.RestrictSkills),
	)

	dispatcher := NewDispatcher(manager, s.logger)

	s.logger.Debug(
		"read header",
		"vocabulary", vocabulary,
		"commands", commandCount,
	)

	summary = &Summary{}

	for line := 1; line <= commandCount; line++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return summary, fmt.Errorf("read command %d: %w", line, err)
			}

			s.logger.Warn(
				"input ended early",
				"read", line-1,
				"want", commandCount,
			)

			break
		}

		summary.Commands++

		msg, ok, err := dispatcher.Dispatch(scanner.Text())
		if err != nil {
			if s.cfg.Strict {
				return summary, fmt.Errorf("command %d: %w", line, err)
			}

			summary.Skipped++
			s.logger.Warn("skip command", "line", line, "err", err)

			continue
		}

		if !ok {
			continue
		}

		if _, err := out.WriteString(msg + "\n"); err != nil {
			return summary, fmt.Errorf("write output: %w", err)
		}
	}

	summary.Jobs = len(manager.Jobs())
	summary.Users = len(manager.Users())

	s.logger.Info(
		"session complete",
		"commands", summary.Commands,
		"skipped", summary.Skipped,
		"jobs", summary.Jobs,
		"users", summary.Users,
	)

	return summary, nil
}

// readHeader reads the vocabulary and the number of commands.
func readHeader(scanner *bufio.Scanner) ([]string, int, error) {
	skillCount, err := readCount(scanner, "skill count")
	if err != nil {
		return nil, 0, err
	}

	skillLine, err := readLine(scanner, "skills")
	if err != nil {
		return nil, 0, err
	}

	commandCount, err := readCount(scanner, "command count")
	if err != nil {
		return nil, 0, err
	}

	return firstN(strings.Fields(skillLine), skillCount), commandCount, nil
}

func readLine(scanner *bufio.Scanner, field string) (string, error) {
	if !scanner.Scan() {
		err := scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}

		return "", NewHeaderError(field, err)
	}

	return scanner.Text(), nil
}

func readCount(scanner *bufio.Scanner, field string) (int, error) {
	line, err := readLine(scanner, field)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, NewHeaderError(field, err)
	}

	return n, nil
}

// firstN returns the first n tokens. A negative n counts back from the end,
// dropping the last -n tokens.
func firstN(tokens []string, n int) []string {
	if n < 0 {
		n = max(len(tokens)+n, 0)
	}

	return tokens[:min(n, len(tokens))]
}
