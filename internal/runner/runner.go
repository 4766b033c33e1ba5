package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"cvmenu/internal/config"
	"cvmenu/internal/errors"
	"cvmenu/internal/menu"
)

// ExecRunner runs generator invocations synchronously with os/exec. The
// child inherits stdout and stderr so its progress output reaches the user.
type ExecRunner struct {
	Command string
	Script  string
	Input   string
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *errors.Logger
}

// New builds an ExecRunner from the generator configuration.
func New(cfg config.GeneratorConfig, logger *errors.Logger) *ExecRunner {
	return &ExecRunner{
		Command: cfg.Command,
		Script:  cfg.Script,
		Input:   cfg.Input,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger,
	}
}

// Argv returns the argument vector for one invocation: the script, the
// fixed input file, then the invocation's flags.
func (r *ExecRunner) Argv(inv menu.Invocation) []string {
	args := make([]string, 0, 2+len(inv.Flags))
	args = append(args, r.Script, r.Input)
	return append(args, inv.Flags...)
}

// Run executes one invocation to completion, blocking until the child
// exits. A non-zero child exit surfaces as an invocation error carrying the
// child's exit status.
func (r *ExecRunner) Run(ctx context.Context, inv menu.Invocation) error {
	args := r.Argv(inv)
	r.Logger.Info("running generator", "command", r.Command, "args", args)

	cmd := exec.CommandContext(ctx, r.Command, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return errors.NewInvocationError(errors.ErrCodeGeneratorFailed,
				fmt.Sprintf("generator exited with status %d", exitErr.ExitCode()),
				exitErr.ExitCode(), err).WithContext("flags", inv.Flags)
		}
		return errors.NewInvocationError(errors.ErrCodeGeneratorStart,
			fmt.Sprintf("failed to start generator: %s", r.Command), 0, err)
	}

	return nil
}
