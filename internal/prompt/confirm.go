// Package prompt provides the interactive terminal pieces of mp: a y/n
// confirmation per package and a spinner shown while installing.
package prompt

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user cancels with ctrl+c or esc.
var ErrAborted = errors.New("aborted by user")

// ConfirmModel asks whether to install one package. Only y and n answer
// the question; any other key is ignored and the question stays open.
type ConfirmModel struct {
	name     string
	answered bool
	yes      bool
	aborted  bool
}

// NewConfirm creates a ConfirmModel for the named package.
func NewConfirm(name string) *ConfirmModel {
	return &ConfirmModel{name: name}
}

// Init is the Bubble Tea initialization function.
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Answered() || m.Aborted() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y":
			m.answered = true
			m.yes = true
			return m, tea.Quit
		case "n":
			m.answered = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the question, followed by the answer once given.
func (m *ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(Question(m.name))
	b.WriteString(" ")

	switch {
	case m.Confirmed():
		b.WriteString(SuccessTextStyle.Render("y"))
	case m.Answered():
		b.WriteString(MutedTextStyle.Render("n"))
	case m.aborted:
		b.WriteString(ErrorTextStyle.Render("aborted"))
	}
	b.WriteString("\n")

	return b.String()
}

// Confirmed reports whether the user answered yes.
func (m *ConfirmModel) Confirmed() bool {
	return m.Answered() && m.yes
}

// Answered reports whether the user answered y or n.
func (m *ConfirmModel) Answered() bool {
	return m.answered
}

// Aborted reports whether the user cancelled.
func (m *ConfirmModel) Aborted() bool {
	return m.aborted
}

// Question renders the prompt text for a package.
func Question(name string) string {
	return "Install package " + PackageStyle.Render(name) + " ? " + KeyStyle.Render("(y/n)")
}
