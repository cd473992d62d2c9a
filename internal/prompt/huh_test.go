package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = fn
}

func TestNewHuh(t *testing.T) {
	p := NewHuh()
	assert.NotNil(t, p)
	assert.NotNil(t, p.isTerminal)
}

func TestHuhConfirmRequiresTerminal(t *testing.T) {
	p := &Huh{isTerminal: func() bool { return false }}
	_, err := p.Confirm("Install?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestHuhConfirmRunsForm(t *testing.T) {
	p := &Huh{isTerminal: func() bool { return true }}
	called := false
	withRunForm(t, func(form *huh.Form) error {
		called = true
		assert.NotNil(t, form)
		return nil
	})

	ok, err := p.Confirm("Install?")
	require.NoError(t, err)
	assert.True(t, called)
	// The form was not driven, so the bound value stays at its zero value.
	assert.False(t, ok)
}

func TestHuhConfirmUserAbort(t *testing.T) {
	p := &Huh{isTerminal: func() bool { return true }}
	withRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })

	_, err := p.Confirm("Install?")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestHuhConfirmFormError(t *testing.T) {
	p := &Huh{isTerminal: func() bool { return true }}
	withRunForm(t, func(*huh.Form) error { return errors.New("tty gone") })

	_, err := p.Confirm("Install?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestInterruptFilter(t *testing.T) {
	_, isQuit := interruptFilter(nil, tea.InterruptMsg{}).(tea.QuitMsg)
	assert.True(t, isQuit)

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	assert.Equal(t, msg, interruptFilter(nil, msg))
}

func TestConfirmKeyMapEscQuits(t *testing.T) {
	km := confirmKeyMap()
	assert.Contains(t, km.Quit.Keys(), "esc")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
}
