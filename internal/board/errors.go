package board

import "errors"

var (
	ErrInvalidName          = errors.New("invalid name")
	ErrInvalidAge           = errors.New("invalid age")
	ErrInvalidTimeCondition = errors.New("invalid time condition")
	ErrInvalidSalary        = errors.New("invalid salary")

	ErrJobNotFound  = errors.New("job not found")
	ErrUserNotFound = errors.New("user not found")

	ErrDuplicateJobSkill  = errors.New("skill already registered on job")
	ErrDuplicateUserSkill = errors.New("skill already registered on user")

	// ErrUnknownSkill is only returned by a Manager that restricts skills to its
	// vocabulary.
	ErrUnknownSkill = errors.New("skill not in vocabulary")

	// ErrNoSkills is returned when a User without any registered skills views a
	// Job. No view counts are changed.
	ErrNoSkills = errors.New("user has no skills")
)
