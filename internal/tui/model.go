package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RxinnotRstar/ratio-finder/internal/config"
	"github.com/RxinnotRstar/ratio-finder/internal/history"
)

// field indexes the two ratio inputs.
type field int

const (
	fieldA field = iota
	fieldB
)

// Model is the root Bubble Tea model: a two-field input form over the
// approximation core, in place of the original windowed form.
type Model struct {
	cfg  *config.Config
	hist *history.Store

	inputA  textinput.Model
	inputB  textinput.Model
	focused field

	// rendered result block for the last computed query
	result string

	// config substitution notice state
	warnings        []string
	warningsVisible bool

	width    int
	height   int
	quitting bool

	keys keyMap
}

// NewModel constructs a Model with initial state. Hist may be nil when
// history is disabled.
func NewModel(cfg *config.Config, warnings []string, hist *history.Store) Model {
	newField := func() textinput.Model {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = inputCharLimit
		ti.Width = inputFieldWidth
		ti.Validate = digitsOnly
		return ti
	}
	a := newField()
	a.Focus()
	b := newField()

	return Model{
		cfg:             cfg,
		hist:            hist,
		inputA:          a,
		inputB:          b,
		focused:         fieldA,
		warnings:        warnings,
		warningsVisible: len(warnings) > 0,
		keys:            newKeyMap(),
	}
}

// digitsOnly mirrors the form's per-keystroke input filter: empty or a run of
// digits, nothing else.
func digitsOnly(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("digits only")
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.warningsVisible {
		cmds = append(cmds, dismissWarningsLater())
	}
	return tea.Batch(cmds...)
}

// dismissWarningsLater schedules the notice to fade out.
func dismissWarningsLater() tea.Cmd {
	return tea.Tick(warningDisplayDuration, func(time.Time) tea.Msg {
		return dismissWarningsMsg{}
	})
}
