package action

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dbmrq/mp/internal/logging"
	"github.com/dbmrq/mp/internal/prompt"
)

type fakePrompter struct {
	answers map[string]bool
	err     error
	asked   []string
	spun    []string
}

func (f *fakePrompter) Confirm(_ context.Context, name string) (bool, error) {
	f.asked = append(f.asked, name)
	if f.err != nil {
		return false, f.err
	}
	return f.answers[name], nil
}

func (f *fakePrompter) Spin(ctx context.Context, title string, fn func(context.Context) error) error {
	f.spun = append(f.spun, title)
	return fn(ctx)
}

type fakeRunner struct {
	calls [][]string
	dirs  []string
	err   error
}

func (f *fakeRunner) Install(_ context.Context, dir string, packages []string) error {
	f.calls = append(f.calls, packages)
	f.dirs = append(f.dirs, dir)
	return f.err
}

func (f *fakeRunner) CommandLine(packages []string) string {
	return "npm install " + strings.Join(packages, " ")
}

func newActions(p Prompter, r Runner) (*Actions, *bytes.Buffer) {
	var out bytes.Buffer
	return New(&out, p, r, logging.NewNoop()), &out
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
		want    string
		notWant string
	}{
		{"some missing", []string{"bar", "baz"}, "bar,baz", "No package"},
		{"one missing", []string{"bar"}, "to install: bar", "No package"},
		{"nothing missing", nil, "No package to install", "to install:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := newActions(&fakePrompter{}, &fakeRunner{})
			a.Check(tt.missing)

			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
			if strings.Contains(out.String(), tt.notWant) {
				t.Errorf("output = %q, should not contain %q", out.String(), tt.notWant)
			}
		})
	}
}

func TestInstall_NothingMissing(t *testing.T) {
	p := &fakePrompter{}
	r := &fakeRunner{}
	a, out := newActions(p, r)

	if err := a.Install(context.Background(), "/proj", nil, InstallOptions{}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if len(p.asked) != 0 {
		t.Errorf("prompted for %v, want no prompt", p.asked)
	}
	if len(r.calls) != 0 {
		t.Errorf("runner called %d times, want 0", len(r.calls))
	}
	if !strings.Contains(out.String(), MsgNothing) {
		t.Errorf("output = %q, want %q", out.String(), MsgNothing)
	}
}

func TestInstall_ConfirmedSubset(t *testing.T) {
	p := &fakePrompter{answers: map[string]bool{"a": true, "b": false, "c": true}}
	r := &fakeRunner{}
	a, out := newActions(p, r)

	err := a.Install(context.Background(), "/proj", []string{"a", "b", "c"}, InstallOptions{})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	if !slices.Equal(p.asked, []string{"a", "b", "c"}) {
		t.Errorf("asked = %v, want [a b c]", p.asked)
	}
	if len(r.calls) != 1 {
		t.Fatalf("runner called %d times, want 1", len(r.calls))
	}
	if !slices.Equal(r.calls[0], []string{"a", "c"}) {
		t.Errorf("installed = %v, want [a c]", r.calls[0])
	}
	if r.dirs[0] != "/proj" {
		t.Errorf("dir = %q, want /proj", r.dirs[0])
	}
	if len(p.spun) != 1 {
		t.Errorf("spinner shown %d times, want 1", len(p.spun))
	}
	if !strings.Contains(out.String(), MsgInstalled) {
		t.Errorf("output = %q, want %q", out.String(), MsgInstalled)
	}
}

func TestInstall_NothingConfirmed(t *testing.T) {
	p := &fakePrompter{answers: map[string]bool{}}
	r := &fakeRunner{}
	a, out := newActions(p, r)

	err := a.Install(context.Background(), "/proj", []string{"a", "b"}, InstallOptions{})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("runner called with %v, want no call", r.calls)
	}
	if strings.Contains(out.String(), MsgInstalled) {
		t.Errorf("output = %q, should not report success", out.String())
	}
}

func TestInstall_AssumeYes(t *testing.T) {
	p := &fakePrompter{}
	r := &fakeRunner{}
	a, _ := newActions(p, r)

	err := a.Install(context.Background(), "/proj", []string{"a", "b"}, InstallOptions{AssumeYes: true})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if len(p.asked) != 0 {
		t.Errorf("prompted for %v with AssumeYes", p.asked)
	}
	if len(r.calls) != 1 || !slices.Equal(r.calls[0], []string{"a", "b"}) {
		t.Errorf("runner calls = %v, want [[a b]]", r.calls)
	}
}

func TestInstall_DryRun(t *testing.T) {
	p := &fakePrompter{}
	r := &fakeRunner{}
	a, out := newActions(p, r)

	err := a.Install(context.Background(), "/proj", []string{"a", "b"}, InstallOptions{AssumeYes: true, DryRun: true})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("runner called with %v in dry run", r.calls)
	}
	if !strings.Contains(out.String(), "npm install a b") {
		t.Errorf("output = %q, want command line", out.String())
	}
}

func TestInstall_PromptAborted(t *testing.T) {
	p := &fakePrompter{err: prompt.ErrAborted}
	r := &fakeRunner{}
	a, _ := newActions(p, r)

	err := a.Install(context.Background(), "/proj", []string{"a", "b"}, InstallOptions{})
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("Install() error = %v, want ErrAborted", err)
	}
	if len(p.asked) != 1 {
		t.Errorf("asked %d times, want to stop after the first", len(p.asked))
	}
	if len(r.calls) != 0 {
		t.Error("runner called after abort")
	}
}

func TestInstall_RunnerError(t *testing.T) {
	boom := errors.New("exit status 1")
	p := &fakePrompter{}
	r := &fakeRunner{err: boom}
	a, out := newActions(p, r)

	err := a.Install(context.Background(), "/proj", []string{"a"}, InstallOptions{AssumeYes: true})
	if !errors.Is(err, boom) {
		t.Fatalf("Install() error = %v, want %v", err, boom)
	}
	if strings.Contains(out.String(), MsgInstalled) {
		t.Error("success reported after failure")
	}
}
