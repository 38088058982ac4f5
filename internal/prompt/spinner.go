package prompt

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// taskDoneMsg is sent when the spinner's task returns.
type taskDoneMsg struct {
	err error
}

// SpinnerModel shows an animated spinner while a task runs.
type SpinnerModel struct {
	spinner spinner.Model
	title   string
	task    func() error
	cancel  context.CancelFunc
	done    bool
	err     error
}

// NewSpinner creates a SpinnerModel that runs task once started. cancel
// is called if the user aborts; it may be nil.
func NewSpinner(title string, task func() error, cancel context.CancelFunc) *SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return &SpinnerModel{
		spinner: s,
		title:   title,
		task:    task,
		cancel:  cancel,
	}
}

// Init starts the animation and the task.
func (m *SpinnerModel) Init() tea.Cmd {
	task := m.task
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return taskDoneMsg{err: task()}
	})
}

// Update handles spinner ticks, task completion and ctrl+c.
func (m *SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		if m.err == nil {
			m.err = msg.err
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrAborted
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner line; it is cleared once the task is done.
func (m *SpinnerModel) View() string {
	if m.Done() || m.err != nil {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// Err returns the task error, or ErrAborted.
func (m *SpinnerModel) Err() error {
	return m.err
}

// Done reports whether the task finished.
func (m *SpinnerModel) Done() bool {
	return m.done
}
