package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/terminal"
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// Huh renders yes/no prompts with charmbracelet/huh.
type Huh struct {
	isTerminal func() bool
}

// NewHuh creates a Huh prompter using the default terminal check.
func NewHuh() *Huh {
	return &Huh{isTerminal: terminal.IsInteractive}
}

// Confirm renders a confirm field. Esc or Ctrl+C returns ErrAborted.
func (p *Huh) Confirm(question string) (bool, error) {
	checker := p.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return false, fmt.Errorf(messages.PromptRequiresTerminal)
	}

	var value bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative(messages.PromptAffirmative).
				Negative(messages.PromptNegative).
				Value(&value),
		),
	)
	form.WithKeyMap(confirmKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptFilter),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, ErrAborted
	}
	if err != nil {
		return false, err
	}
	return value, nil
}

// confirmKeyMap maps Esc to abort alongside Ctrl+C.
func confirmKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}

// interruptFilter converts SIGINT into a graceful quit so the form clears its output.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}
