package dispatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	CommandAddJob       = "ADD-JOB"
	CommandAddUser      = "ADD-USER"
	CommandAddJobSkill  = "ADD-JOB-SKILL"
	CommandAddUserSkill = "ADD-USER-SKILL"
	CommandView         = "VIEW"
	CommandJobStatus    = "JOB-STATUS"
	CommandUserStatus   = "USER-STATUS"
)

// Command is a single parsed input line.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits line on whitespace into a Command. It returns false if
// the line is blank.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}

	return Command{Name: fields[0], Args: fields[1:]}, true
}

// Arg returns the argument at i.
func (c Command) Arg(i int) (string, error) {
	if i < 0 || i >= len(c.Args) {
		return "", NewSyntaxError(
			c.Name,
			fmt.Sprintf("missing argument %d", i+1),
		)
	}

	return c.Args[i], nil
}

// Int returns the argument at i as an int.
//
// A value too large for an int is clamped to the nearest bound rather than
// rejected, so that it fails the range checks of validation instead of being
// reported as malformed input.
func (c Command) Int(i int) (int, error) {
	s, err := c.Arg(i)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n, nil
		}

		return 0, NewSyntaxError(
			c.Name,
			fmt.Sprintf("argument %d is not an integer: %q", i+1, s),
		)
	}

	return n, nil
}
