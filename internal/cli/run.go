package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lcdir-labs/lcdir/internal/config"
	"github.com/lcdir-labs/lcdir/internal/logging"
	"github.com/lcdir-labs/lcdir/internal/output"
	"github.com/lcdir-labs/lcdir/internal/project"
	"github.com/lcdir-labs/lcdir/internal/resolve"
	"github.com/lcdir-labs/lcdir/internal/rule"
	"github.com/lcdir-labs/lcdir/internal/runner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// run resolves the targets, writes the rule, and runs the llm-context
// commands. Nothing is written before the commands are known to exist.
func run(cmd *cobra.Command, args []string, o *options) error {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := logging.New(cmd.ErrOrStderr(), settings.Debug)

	runnerOpts := []runner.Option{
		runner.WithAnnounce(func(c runner.Command) { out.Command(c.String()) }),
		runner.WithLogger(logger),
	}
	if o.lookPath != nil {
		runnerOpts = append(runnerOpts, runner.WithLookPath(o.lookPath))
	}
	if o.executor != nil {
		runnerOpts = append(runnerOpts, runner.WithExecutor(o.executor))
	}
	lc := runner.New(runnerOpts...)

	if err := lc.Check(); err != nil {
		return err
	}

	cwd, err := o.getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}
	root, err := project.FindRoot(cwd, settings.MarkerFile)
	if err != nil {
		return err
	}
	logger.Debug("project root", "path", root, "cwd", cwd)

	res := resolve.New(root, cwd, newSelector(settings.SelectMode, o.stdin, cmd.OutOrStdout()))
	res.OnResolved = func(t resolve.Target) {
		if t.Query != "" {
			out.Found(t.Query, t.Path)
		}
	}
	targets, err := res.ResolveAll(args)
	if err != nil {
		return err
	}

	w := rule.NewWriter(root, settings.StateDir)
	name, err := w.Write(resolve.Paths(targets), settings.RuleName)
	if err != nil {
		return err
	}
	logger.Debug("wrote rule", "path", w.Path(name))

	return lc.Run(cmd.Context(), root, name)
}

// newSelector picks how ambiguous folder names are settled. In auto mode the
// user is prompted only when stdin is a terminal.
func newSelector(mode string, in io.Reader, out io.Writer) resolve.Selector {
	switch mode {
	case config.SelectPrompt:
		return resolve.NewPromptSelector(in, out)
	case config.SelectFirst:
		return resolve.FirstMatchSelector{}
	case config.SelectFail:
		return resolve.FailSelector{}
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return resolve.NewPromptSelector(in, out)
	}
	return resolve.FailSelector{}
}
