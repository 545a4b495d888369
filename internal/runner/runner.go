package runner

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"

	"github.com/lcdir-labs/lcdir/internal/branding"
)

// Names of the llm-context commands, in the order they run.
const (
	SetRuleCommand     = "lc-set-rule"
	SelectFilesCommand = "lc-sel-files"
	ContextCommand     = "lc-context"
)

// RequiredCommands lists every command that must be on PATH.
func RequiredCommands() []string {
	return []string{SetRuleCommand, SelectFilesCommand, ContextCommand}
}

// LookPathFunc finds an executable, with the semantics of exec.LookPath.
type LookPathFunc func(file string) (string, error)

// Runner checks for and runs the llm-context commands.
type Runner struct {
	executor Executor
	lookPath LookPathFunc
	announce func(Command)
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor replaces the process executor (useful for testing).
func WithExecutor(e Executor) Option {
	return func(r *Runner) { r.executor = e }
}

// WithLookPath replaces the PATH lookup (useful for testing).
func WithLookPath(fn LookPathFunc) Option {
	return func(r *Runner) { r.lookPath = fn }
}

// WithAnnounce sets a callback invoked with each command just before it runs.
func WithAnnounce(fn func(Command)) Option {
	return func(r *Runner) { r.announce = fn }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// New creates a Runner that executes real processes unless overridden.
func New(opts ...Option) *Runner {
	r := &Runner{
		executor: &ExecExecutor{},
		lookPath: exec.LookPath,
		announce: func(Command) {},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Check verifies that every required command is on PATH. All missing
// commands are reported together in a *MissingDependencyError.
func (r *Runner) Check() error {
	var missing []string
	for _, name := range RequiredCommands() {
		path, err := r.lookPath(name)
		if err != nil {
			missing = append(missing, name)
			continue
		}
		r.logger.Debug("found command", "name", name, "path", path)
	}

	if len(missing) > 0 {
		return &MissingDependencyError{
			Commands: missing,
			Tool:     branding.ToolName(),
			URL:      branding.ToolURL(),
		}
	}
	return nil
}

// Sequence returns the commands that activate rule and copy its context.
func Sequence(rule string) []Command {
	return []Command{
		{Name: SetRuleCommand, Args: []string{rule}},
		{Name: SelectFilesCommand},
		{Name: ContextCommand},
	}
}

// Run checks for the commands, then runs the sequence for rule from root.
// The first failing command stops the sequence; effects of earlier commands
// are left in place. There is no timeout beyond what ctx imposes.
func (r *Runner) Run(ctx context.Context, root, rule string) error {
	if err := r.Check(); err != nil {
		return err
	}

	for _, cmd := range Sequence(rule) {
		r.announce(cmd)
		r.logger.Debug("running command", "cmd", cmd.String(), "dir", root)

		if err := r.executor.Run(ctx, root, cmd); err != nil {
			toolErr := &ExternalToolError{Command: cmd, ExitCode: -1, Err: err}
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				toolErr.ExitCode = exitErr.ExitCode()
			}
			return toolErr
		}
	}
	return nil
}
