package dispatch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nixpig/jobboard/internal/board"
)

// Output lines for successful commands.
const (
	msgSkillAddedToJob  = "Skill added to job"
	msgSkillAddedToUser = "Skill added to user"
	msgJobViewed        = "Job viewed successfully"
)

type handlerFunc func(cmd Command) (string, error)

// Dispatcher runs Commands against a board.Manager.
type Dispatcher struct {
	manager  *board.Manager
	logger   *slog.Logger
	handlers map[string]handlerFunc
}

// NewDispatcher creates a Dispatcher that runs commands against manager.
func NewDispatcher(manager *board.Manager, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{manager: manager, logger: logger}

	d.handlers = map[string]handlerFunc{
		CommandAddJob:       d.addJob,
		CommandAddUser:      d.addUser,
		CommandAddJobSkill:  d.addJobSkill,
		CommandAddUserSkill: d.addUserSkill,
		CommandView:         d.view,
		CommandJobStatus:    d.jobStatus,
		CommandUserStatus:   d.userStatus,
	}

	return d
}

// Dispatch parses and runs a single command line. It returns the output line
// and true if the command produced output.
//
// Failures of the command itself, such as a validation error or an unknown
// ID, are reported in the output line. Blank lines and unrecognised commands
// produce no output. The only error returned is a *SyntaxError for a line
// that can't be parsed into the command's arguments.
func (d *Dispatcher) Dispatch(line string) (string, bool, error) {
	cmd, ok := ParseCommand(line)
	if !ok {
		return "", false, nil
	}

	handler, ok := d.handlers[cmd.Name]
	if !ok {
		d.logger.Debug("ignore unrecognised command", "command", cmd.Name)
		return "", false, nil
	}

	out, err := handler(cmd)
	if err != nil {
		if errors.As(err, new(*SyntaxError)) {
			return "", false, err
		}

		msg, mapErr := d.mapError(cmd.Name, err)
		if mapErr != nil {
			return "", false, mapErr
		}

		return msg, true, nil
	}

	return out, true, nil
}

func (d *Dispatcher) addJob(cmd Command) (string, error) {
	spec, err := parseJobSpec(cmd)
	if err != nil {
		return "", err
	}

	id, err := d.manager.AddJob(spec)
	if err != nil {
		return "", err
	}

	d.logger.Debug("add job", "id", id, "name", spec.Name)

	return fmt.Sprintf("Job ID is %d", id), nil
}

func (d *Dispatcher) addUser(cmd Command) (string, error) {
	spec, err := parseUserSpec(cmd)
	if err != nil {
		return "", err
	}

	id, err := d.manager.AddUser(spec)
	if err != nil {
		return "", err
	}

	d.logger.Debug("add user", "id", id, "name", spec.Name)

	return fmt.Sprintf("User ID is %d", id), nil
}

func (d *Dispatcher) addJobSkill(cmd Command) (string, error) {
	id, skill, err := parseSkillArgs(cmd)
	if err != nil {
		return "", err
	}

	if err := d.manager.AddJobSkill(id, skill); err != nil {
		return "", err
	}

	return msgSkillAddedToJob, nil
}

func (d *Dispatcher) addUserSkill(cmd Command) (string, error) {
	id, skill, err := parseSkillArgs(cmd)
	if err != nil {
		return "", err
	}

	if err := d.manager.AddUserSkill(id, skill); err != nil {
		return "", err
	}

	return msgSkillAddedToUser, nil
}

func (d *Dispatcher) view(cmd Command) (string, error) {
	userID, err := cmd.Int(0)
	if err != nil {
		return "", err
	}

	jobID, err := cmd.Int(1)
	if err != nil {
		return "", err
	}

	if err := d.manager.View(userID, jobID); err != nil {
		return "", err
	}

	return msgJobViewed, nil
}

func (d *Dispatcher) jobStatus(cmd Command) (string, error) {
	id, err := cmd.Int(0)
	if err != nil {
		return "", err
	}

	status, err := d.manager.QueryJob(id)
	if err != nil {
		return "", err
	}

	return renderJobStatus(status), nil
}

func (d *Dispatcher) userStatus(cmd Command) (string, error) {
	id, err := cmd.Int(0)
	if err != nil {
		return "", err
	}

	status, err := d.manager.QueryUser(id)
	if err != nil {
		return "", err
	}

	return renderUserStatus(status), nil
}

// mapError translates board errors to output lines.
func (d *Dispatcher) mapError(command string, err error) (string, error) {
	var msg string

	switch {
	case errors.Is(err, board.ErrInvalidName):
		msg = "Invalid name"
	case errors.Is(err, board.ErrInvalidAge):
		msg = "Invalid age"
	case errors.Is(err, board.ErrInvalidTimeCondition):
		msg = "Invalid time condition"
	case errors.Is(err, board.ErrInvalidSalary):
		msg = "Invalid salary"
	case errors.Is(err, board.ErrJobNotFound):
		msg = "Invalid job ID"
	case errors.Is(err, board.ErrUserNotFound):
		msg = "Invalid user ID"
	case errors.Is(err, board.ErrDuplicateJobSkill):
		msg = "Skill already exists in job"
	case errors.Is(err, board.ErrDuplicateUserSkill):
		msg = "Skill already exists for user"
	case errors.Is(err, board.ErrUnknownSkill):
		msg = "Skill not in vocabulary"
	case errors.Is(err, board.ErrNoSkills):
		msg = "User has no skills to view the job"
	default:
		d.logger.Error("unexpected error", "command", command, "err", err)
		return "", fmt.Errorf("%s: %w", command, err)
	}

	d.logger.Debug("command failed", "command", command, "err", err)

	return msg, nil
}

func parseJobSpec(cmd Command) (board.JobSpec, error) {
	name, err := cmd.Arg(0)
	if err != nil {
		return board.JobSpec{}, err
	}

	minAge, err := cmd.Int(1)
	if err != nil {
		return board.JobSpec{}, err
	}

	maxAge, err := cmd.Int(2)
	if err != nil {
		return board.JobSpec{}, err
	}

	timeCondition, err := cmd.Arg(3)
	if err != nil {
		return board.JobSpec{}, err
	}

	salary, err := cmd.Int(4)
	if err != nil {
		return board.JobSpec{}, err
	}

	return board.JobSpec{
		Name:          name,
		MinAge:        minAge,
		MaxAge:        maxAge,
		TimeCondition: timeCondition,
		Salary:        salary,
	}, nil
}

func parseUserSpec(cmd Command) (board.UserSpec, error) {
	name, err := cmd.Arg(0)
	if err != nil {
		return board.UserSpec{}, err
	}

	age, err := cmd.Int(1)
	if err != nil {
		return board.UserSpec{}, err
	}

	timeCondition, err := cmd.Arg(2)
	if err != nil {
		return board.UserSpec{}, err
	}

	salary, err := cmd.Int(3)
	if err != nil {
		return board.UserSpec{}, err
	}

	return board.UserSpec{
		Name:          name,
		Age:           age,
		TimeCondition: timeCondition,
		Salary:        salary,
	}, nil
}

func parseSkillArgs(cmd Command) (int, string, error) {
	id, err := cmd.Int(0)
	if err != nil {
		return 0, "", err
	}

	skill, err := cmd.Arg(1)
	if err != nil {
		return 0, "", err
	}

	return id, skill, nil
}
