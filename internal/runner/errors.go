package runner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingDependency matches a MissingDependencyError with errors.Is.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrExternalTool matches an ExternalToolError with errors.Is.
	ErrExternalTool = errors.New("external tool failed")
)

// MissingDependencyError lists every required command absent from PATH.
type MissingDependencyError struct {
	Commands []string
	Tool     string
	URL      string
}

// Error implements the error interface.
func (e *MissingDependencyError) Error() string {
	quoted := make([]string, len(e.Commands))
	for i, c := range e.Commands {
		quoted[i] = "'" + c + "'"
	}
	return fmt.Sprintf("%s not found. Make sure you have installed the %s CLI. See %s for installation instructions",
		strings.Join(quoted, ", "), e.Tool, e.URL)
}

// Is reports whether target is ErrMissingDependency.
func (e *MissingDependencyError) Is(target error) bool {
	return target == ErrMissingDependency
}

// ExternalToolError is returned when an external command exits non-zero or
// cannot be started.
type ExternalToolError struct {
	Command  Command
	ExitCode int // -1 when the process never ran to completion
	Err      error
}

// Error implements the error interface.
func (e *ExternalToolError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying process error.
func (e *ExternalToolError) Unwrap() error { return e.Err }

// Is reports whether target is ErrExternalTool.
func (e *ExternalToolError) Is(target error) bool {
	return target == ErrExternalTool
}
