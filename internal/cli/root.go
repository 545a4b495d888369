package cli

import (
	"io"
	"os"

	"github.com/lcdir-labs/lcdir/internal/branding"
	"github.com/lcdir-labs/lcdir/internal/config"
	"github.com/lcdir-labs/lcdir/internal/output"
	"github.com/lcdir-labs/lcdir/internal/runner"
	"github.com/lcdir-labs/lcdir/internal/version"
	"github.com/spf13/cobra"
)

// options holds the collaborators the root command talks to. Tests replace
// them to avoid touching the real working directory, PATH, or processes.
type options struct {
	configPath string
	getwd      func() (string, error)
	stdin      io.Reader
	lookPath   runner.LookPathFunc
	executor   runner.Executor
}

// Option customizes the root command.
type Option func(*options)

// WithConfigPath reads settings from path instead of ~/.lc-dir/config.yaml.
func WithConfigPath(path string) Option {
	return func(o *options) { o.configPath = path }
}

// WithWorkingDir runs the command as if started from dir.
func WithWorkingDir(dir string) Option {
	return func(o *options) { o.getwd = func() (string, error) { return dir, nil } }
}

// WithStdin sets where interactive selections are read from.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithLookPath replaces the PATH lookup for the llm-context commands.
func WithLookPath(fn runner.LookPathFunc) Option {
	return func(o *options) { o.lookPath = fn }
}

// WithExecutor replaces the process executor for the llm-context commands.
func WithExecutor(e runner.Executor) Option {
	return func(o *options) { o.executor = e }
}

// NewRootCmd creates the lc-dir command.
func NewRootCmd(buildVersion, buildCommit, buildDate string, opts ...Option) *cobra.Command {
	o := &options{
		configPath: config.FilePath(),
		getwd:      os.Getwd,
		stdin:      os.Stdin,
	}
	for _, opt := range opts {
		opt(o)
	}

	name := branding.CLIName()
	cmd := &cobra.Command{
		Use:   name + " [target...]",
		Short: branding.Description(),
		Long: branding.Description() + `.

Each target is a folder path or a folder name. Names are searched
case-insensitively across the project; when several folders match you are
asked to pick one. With no target the current folder is used.

The project root is the nearest parent folder containing a .gitignore.
A temporary rule is written to .llm-context/rules/ and activated with the
llm-context CLI (` + branding.ToolURL() + `).

Settings are read from ` + config.FilePath() + ` and from ` + branding.EnvPrefix() + `_*
environment variables. The folder picker only prompts when stdin is a
terminal; to answer it from a pipe (echo 1 | ` + name + ` common) set
` + branding.EnvVar(config.KeySelectMode) + `=prompt. Use first or fail to pick without asking.`,
		Example: `  ` + name + `                       # copy from current folder
  ` + name + ` src/my_module         # copy from specific folder
  ` + name + ` common kafka models   # copy several folders at once`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Canonical(buildVersion),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}
	cmd.SetVersionTemplate(version.Describe(name, buildVersion, buildCommit, buildDate) + "\n")

	return cmd
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(buildVersion, buildCommit, buildDate string) error {
	cmd := NewRootCmd(buildVersion, buildCommit, buildDate)
	if err := cmd.Execute(); err != nil {
		output.NewRenderer(os.Stdout, os.Stderr).Error(err)
		return err
	}
	return nil
}
