package dispatch

import "fmt"

// SyntaxError is returned when a command line is missing arguments or has an
// argument of the wrong type.
type SyntaxError struct {
	command string
	reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed %s command: %s", e.command, e.reason)
}

func NewSyntaxError(command, reason string) *SyntaxError {
	return &SyntaxError{command, reason}
}

// HeaderError is returned when the protocol header can't be read. The run
// can't continue after a HeaderError.
type HeaderError struct {
	field string
	err   error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("read %s: %v", e.field, e.err)
}

func (e *HeaderError) Unwrap() error {
	return e.err
}

func NewHeaderError(field string, err error) *HeaderError {
	return &HeaderError{field, err}
}
