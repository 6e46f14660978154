package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/RxinnotRstar/ratio-finder/internal/config"
)

func pressEnter(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func TestUpdate_EnterComputesWhenBothFieldsFilled(t *testing.T) {
	t.Parallel()

	m := NewModel(config.Default(), nil, nil)
	m.inputA.SetValue("16")
	m.inputB.SetValue("9")

	m = pressEnter(t, m)
	require.Contains(t, m.result, "[16:9]")
	require.Contains(t, m.result, "error =0")
}

func TestUpdate_EnterFocusesFirstEmptyField(t *testing.T) {
	t.Parallel()

	m := NewModel(config.Default(), nil, nil)
	m.inputB.SetValue("9")

	m = pressEnter(t, m)
	require.Empty(t, m.result)
	require.Equal(t, fieldA, m.focused)

	m.inputA.SetValue("16")
	m.inputB.SetValue("")
	m = pressEnter(t, m)
	require.Empty(t, m.result)
	require.Equal(t, fieldB, m.focused)
}

func TestUpdate_TabSwitchesFields(t *testing.T) {
	t.Parallel()

	m := NewModel(config.Default(), nil, nil)
	require.Equal(t, fieldA, m.focused)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got, ok := next.(Model)
	require.True(t, ok)
	require.Equal(t, fieldB, got.focused)
}

func TestUpdate_DismissHidesWarnings(t *testing.T) {
	t.Parallel()

	m := NewModel(config.Default(), []string{"invalid max_denominator; reset to 64"}, nil)
	require.True(t, m.warningsVisible)

	next, _ := m.Update(dismissWarningsMsg{})
	got, ok := next.(Model)
	require.True(t, ok)
	require.False(t, got.warningsVisible)
}

func TestUpdate_DismissKeyOnlyActsWhileNoticeVisible(t *testing.T) {
	t.Parallel()

	w := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}

	m := NewModel(config.Default(), []string{"invalid max_denominator; reset to 64"}, nil)
	next, _ := m.Update(w)
	got, ok := next.(Model)
	require.True(t, ok)
	require.False(t, got.warningsVisible)

	// With no notice up, 'w' is just another rejected rune for the digit
	// field; nothing changes.
	m = NewModel(config.Default(), nil, nil)
	m.inputA.SetValue("16")
	next, _ = m.Update(w)
	got, ok = next.(Model)
	require.True(t, ok)
	require.False(t, got.warningsVisible)
	require.Equal(t, "16", got.inputA.Value())
}

func TestView_FooterAdvertisesDismissOnlyWithWarnings(t *testing.T) {
	t.Parallel()

	withWarnings := NewModel(config.Default(), []string{"invalid max_denominator; reset to 64"}, nil)
	require.Contains(t, withWarnings.View(), "w: dismiss warnings")

	without := NewModel(config.Default(), nil, nil)
	require.NotContains(t, without.View(), "w: dismiss warnings")
}

func TestDigitsOnly(t *testing.T) {
	t.Parallel()

	require.NoError(t, digitsOnly(""))
	require.NoError(t, digitsOnly("1234"))
	require.Error(t, digitsOnly("12a"))
	require.Error(t, digitsOnly("1.5"))
}
