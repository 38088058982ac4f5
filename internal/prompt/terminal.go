package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	mperrors "github.com/dbmrq/mp/internal/errors"
)

// Terminal asks questions and shows progress. When In is a terminal each
// question is a Bubble Tea program; otherwise answers are read one line at
// a time from In and the spinner is replaced by a plain status line.
type Terminal struct {
	In  io.Reader
	Out io.Writer

	lines *bufio.Reader
}

// interactive reports whether In is a terminal.
func (t *Terminal) interactive() bool {
	f, ok := t.In.(term.File)
	return ok && term.IsTerminal(f.Fd())
}

// Confirm asks whether to install name and blocks until it is answered.
func (t *Terminal) Confirm(ctx context.Context, name string) (bool, error) {
	if !t.interactive() {
		return t.confirmLine(ctx, name)
	}

	model := NewConfirm(name)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)
	if _, err := p.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	if model.Aborted() {
		return false, ErrAborted
	}
	return model.Confirmed(), nil
}

// confirmLine reads answers line by line. Anything other than y or n asks
// again; input ending before an answer is an error.
func (t *Terminal) confirmLine(ctx context.Context, name string) (bool, error) {
	if t.lines == nil {
		t.lines = bufio.NewReader(t.In)
	}

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprint(t.Out, Question(name)+" ")

		line, err := t.lines.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			fmt.Fprintln(t.Out)
			return true, nil
		case "n":
			fmt.Fprintln(t.Out)
			return false, nil
		}
		fmt.Fprintln(t.Out)

		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, mperrors.NoAnswer(name)
			}
			return false, mperrors.ReadError("stdin", err)
		}
	}
}

// Spin runs fn while showing title next to a spinner.
func (t *Terminal) Spin(ctx context.Context, title string, fn func(context.Context) error) error {
	if !t.interactive() {
		fmt.Fprintln(t.Out, MutedTextStyle.Render(title))
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewSpinner(title, func() error { return fn(ctx) }, cancel)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)
	if _, err := p.Run(); err != nil && model.Err() == nil {
		return fmt.Errorf("spinner failed: %w", err)
	}
	return model.Err()
}

// Auto confirms every package without asking and runs tasks without a
// spinner, printing the title instead. It backs --yes.
type Auto struct {
	Out io.Writer
}

// Confirm always answers yes.
func (a *Auto) Confirm(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.Out != nil {
		fmt.Fprintf(a.Out, "%s %s\n", Question(name), SuccessTextStyle.Render("y"))
	}
	return true, nil
}

// Spin prints title and runs fn.
func (a *Auto) Spin(ctx context.Context, title string, fn func(context.Context) error) error {
	if a.Out != nil {
		fmt.Fprintln(a.Out, MutedTextStyle.Render(title))
	}
	return fn(ctx)
}
