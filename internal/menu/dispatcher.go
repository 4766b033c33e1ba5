package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"cvmenu/internal/config"
	"cvmenu/internal/errors"
)

// Runner executes one generator invocation to completion.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// Lister writes a listing of the generator's output directory.
type Lister interface {
	WriteListing(w io.Writer, dir string) error
}

// Dispatcher runs one interactive menu session: print the menu, read one
// selection, execute the resolved plan strictly sequentially, then list the
// output directory.
type Dispatcher struct {
	In          io.Reader
	Out         io.Writer
	Credentials config.Credentials
	Runner      Runner
	Lister      Lister
	OutputDir   string
	Logger      *errors.Logger
}

// Run performs a single menu interaction and returns when the resolved plan
// has finished, failed, or the exit choice was taken.
func (d *Dispatcher) Run(ctx context.Context) error {
	fmt.Fprint(d.Out, Text)
	fmt.Fprint(d.Out, Prompt)

	line, err := readLine(d.In)
	if err != nil {
		return errors.NewIOError(errors.ErrCodeInputRead, "failed to read selection", err)
	}

	choice, err := ParseChoice(line)
	if err != nil {
		return err
	}
	d.Logger.Debug("selection read", "choice", int(choice))

	plan, err := Resolve(choice, d.Credentials.HasAPIKey())
	if err != nil {
		return err
	}

	ran, err := RunPlan(ctx, d.Out, d.Runner, plan, d.Logger)
	if err != nil {
		return err
	}
	if !ran {
		return nil
	}

	fmt.Fprintln(d.Out, "\nDone. Generated files:")
	return d.Lister.WriteListing(d.Out, d.OutputDir)
}

// RunPlan executes a plan's invocations in order, stopping at the first
// failure. It reports whether the whole plan completed with at least one
// invocation run, i.e. whether there is output worth listing.
func RunPlan(ctx context.Context, out io.Writer, r Runner, plan Plan, logger *errors.Logger) (bool, error) {
	if plan.Warning != "" {
		fmt.Fprintln(out, plan.Warning)
		logger.Warn("translation skipped", "reason", "no API key configured")
	}

	for _, inv := range plan.Invocations {
		fmt.Fprintf(out, "\n--- %s ---\n", inv.Label)
		if err := r.Run(ctx, inv); err != nil {
			return false, err
		}
	}

	return len(plan.Invocations) > 0, nil
}

// readLine reads a single input line, tolerating a missing trailing newline
// at EOF.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.ErrUnexpectedEOF
	}
	return line, nil
}
