// Package install runs the package manager to add missing dependencies.
package install

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	mperrors "github.com/dbmrq/mp/internal/errors"
	"github.com/dbmrq/mp/internal/logging"
)

// maxErrorOutput bounds the command output kept in an install error.
const maxErrorOutput = 2000

// Options configures an Installer.
type Options struct {
	// Command is the package manager executable, e.g. "npm".
	Command string
	// Args come before the package names, e.g. ["install"].
	Args []string
}

// Installer shells out to a package manager.
type Installer struct {
	opts   Options
	logger *logging.Logger
}

// New creates an Installer. A nil logger uses the global logger.
func New(opts Options, logger *logging.Logger) *Installer {
	if opts.Command == "" {
		opts.Command = "npm"
		if opts.Args == nil {
			opts.Args = []string{"install"}
		}
	}
	if logger == nil {
		logger = logging.Global()
	}
	return &Installer{
		opts:   opts,
		logger: logger.With("component", "installer"),
	}
}

// CommandLine renders the command that Install would run.
func (i *Installer) CommandLine(packages []string) string {
	return strings.Join(i.argv(packages), " ")
}

func (i *Installer) argv(packages []string) []string {
	argv := make([]string, 0, 1+len(i.opts.Args)+len(packages))
	argv = append(argv, i.opts.Command)
	argv = append(argv, i.opts.Args...)
	argv = append(argv, packages...)
	return argv
}

// Install runs the package manager for packages in dir. Output is logged
// line by line at info level. A non-zero exit yields an ErrInstall error
// carrying the tail of the output.
func (i *Installer) Install(ctx context.Context, dir string, packages []string) error {
	argv := i.argv(packages)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	var output bytes.Buffer
	logOut := i.logger.Writer(logging.LevelInfo)
	defer logOut.Flush()
	// One shared writer keeps exec to a single copying goroutine.
	w := io.MultiWriter(&output, logOut)
	cmd.Stdout = w
	cmd.Stderr = w

	i.logger.Info("running install", "command", i.CommandLine(packages), "dir", dir)

	if err := cmd.Run(); err != nil {
		exitCode := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return mperrors.InstallFailed(i.CommandLine(packages), exitCode, tail(output.String(), maxErrorOutput), err)
	}

	return nil
}

// tail returns at most n trailing bytes of s, trimmed.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
