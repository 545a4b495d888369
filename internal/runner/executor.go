package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is one external command invocation.
type Command struct {
	Name string
	Args []string
}

// String renders the command line as echoed to the user.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Executor runs a command with dir as its working directory. A non-zero
// exit must be reported as an error; *exec.ExitError carries the code.
type Executor interface {
	Run(ctx context.Context, dir string, cmd Command) error
}

// ExecExecutor is the default Executor. It runs commands through os/exec and
// connects them to the given streams (the process's own when nil) so the
// external tool can talk to the terminal.
type ExecExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Executor.
func (e *ExecExecutor) Run(ctx context.Context, dir string, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = dir
	c.Stdin = e.Stdin
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	c.Stdout = e.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = e.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	return c.Run()
}
