package dogewifi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProcessFailed   = errors.New("process exited with nonzero status")
	ErrCommandRejected = errors.New("command rejected")
)

// ProcessError is returned when a tool exits nonzero. Its output is never
// parsed.
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ProcessError) Is(target error) bool {
	return target == ErrProcessFailed
}

// CommandRejectedError is returned when a tool exits cleanly but reports
// failure through its own output (wpa_cli prints FAIL).
type CommandRejectedError struct {
	Command string
	Result  string
}

func (e *CommandRejectedError) Error() string {
	return e.Result
}

func (e *CommandRejectedError) Is(target error) bool {
	return target == ErrCommandRejected
}

// FieldError reports a captured field that could not be converted, e.g. an
// integer that overflows int.
type FieldError struct {
	Field string
	Text  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q: %v", e.Field, e.Text, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
