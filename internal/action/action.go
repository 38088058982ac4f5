// Package action turns a Missing list into user-facing output: the check
// report, or the confirm-then-install flow.
package action

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dbmrq/mp/internal/logging"
	"github.com/dbmrq/mp/internal/prompt"
)

// User-facing messages.
const (
	MsgToInstall = " ⚡️ Package(s) to install:"
	MsgNothing   = " ❌ No package to install"
	MsgInstalled = " ✅ Packages installed !"
	MsgNoneKept  = " ❌ No package selected"
)

// Prompter asks the user about each package and shows progress.
type Prompter interface {
	Confirm(ctx context.Context, name string) (bool, error)
	Spin(ctx context.Context, title string, fn func(context.Context) error) error
}

// Runner installs packages.
type Runner interface {
	Install(ctx context.Context, dir string, packages []string) error
	CommandLine(packages []string) string
}

// InstallOptions controls the install flow.
type InstallOptions struct {
	// AssumeYes confirms every package without prompting.
	AssumeYes bool
	// DryRun prints the install command instead of running it.
	DryRun bool
}

// Actions writes results to Out.
type Actions struct {
	Out      io.Writer
	Prompter Prompter
	Runner   Runner
	logger   *logging.Logger
}

// New creates Actions. A nil logger uses the global logger.
func New(out io.Writer, p Prompter, r Runner, logger *logging.Logger) *Actions {
	if logger == nil {
		logger = logging.Global()
	}
	return &Actions{
		Out:      out,
		Prompter: p,
		Runner:   r,
		logger:   logger.With("component", "action"),
	}
}

// Check reports the missing packages without changing anything.
func (a *Actions) Check(missing []string) {
	if len(missing) == 0 {
		fmt.Fprintln(a.Out, prompt.ErrorTextStyle.Render(MsgNothing))
		return
	}
	fmt.Fprintln(a.Out, prompt.WarningTextStyle.Render(MsgToInstall)+" "+strings.Join(missing, ","))
}

// Install asks about each missing package in order, then installs the
// confirmed ones with a single runner call in dir.
func (a *Actions) Install(ctx context.Context, dir string, missing []string, opts InstallOptions) error {
	if len(missing) == 0 {
		fmt.Fprintln(a.Out, prompt.ErrorTextStyle.Render(MsgNothing))
		return nil
	}

	confirmed, err := a.confirm(ctx, missing, opts.AssumeYes)
	if err != nil {
		return err
	}
	if len(confirmed) == 0 {
		a.logger.Debug("nothing confirmed", "missing", len(missing))
		fmt.Fprintln(a.Out, prompt.MutedTextStyle.Render(MsgNoneKept))
		return nil
	}

	if opts.DryRun {
		fmt.Fprintln(a.Out, a.Runner.CommandLine(confirmed))
		return nil
	}

	a.logger.Info("installing", "packages", confirmed, "dir", dir)
	title := "Installing " + strings.Join(confirmed, ", ")
	err = a.Prompter.Spin(ctx, title, func(ctx context.Context) error {
		return a.Runner.Install(ctx, dir, confirmed)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, prompt.SuccessTextStyle.Render(MsgInstalled))
	return nil
}

func (a *Actions) confirm(ctx context.Context, missing []string, assumeYes bool) ([]string, error) {
	if assumeYes {
		return append([]string(nil), missing...), nil
	}

	var confirmed []string
	for _, name := range missing {
		ok, err := a.Prompter.Confirm(ctx, name)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("answer", "package", name, "install", ok)
		if ok {
			confirmed = append(confirmed, name)
		}
	}
	return confirmed, nil
}
