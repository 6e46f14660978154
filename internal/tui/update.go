package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/RxinnotRstar/ratio-finder/internal/approx"
	"github.com/RxinnotRstar/ratio-finder/internal/report"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract.
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case dismissWarningsMsg:
		m.warningsVisible = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(x, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(x, m.keys.Next):
			m.focusField(m.focused.next())
			return m, nil
		case key.Matches(x, m.keys.Prev):
			m.focusField(m.focused.next()) // two fields; prev == next
			return m, nil
		case key.Matches(x, m.keys.Compute):
			return m.handleEnter()
		case key.Matches(x, m.keys.Clear):
			m.inputA.SetValue("")
			m.inputB.SetValue("")
			m.result = ""
			m.focusField(fieldA)
			return m, nil
		case key.Matches(x, m.keys.Dismiss):
			// Only meaningful while the notice is up; otherwise the key
			// falls through to the focused input like any other rune.
			if m.warningsVisible {
				m.warningsVisible = false
				return m, nil
			}
		}
	}

	// Everything else goes to the focused text input.
	var cmd tea.Cmd
	if m.focused == fieldA {
		m.inputA, cmd = m.inputA.Update(msg)
	} else {
		m.inputB, cmd = m.inputB.Update(msg)
	}
	return m, cmd
}

func (f field) next() field {
	if f == fieldA {
		return fieldB
	}
	return fieldA
}

func (m *Model) focusField(f field) {
	m.focused = f
	if f == fieldA {
		m.inputA.Focus()
		m.inputB.Blur()
	} else {
		m.inputB.Focus()
		m.inputA.Blur()
	}
}

// handleEnter mirrors the original form's Enter behavior: jump to the first
// empty field, or compute when both are filled.
func (m Model) handleEnter() (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract.
	aStr, bStr := m.inputA.Value(), m.inputB.Value()
	switch {
	case aStr == "":
		m.focusField(fieldA)
		return m, nil
	case bStr == "":
		m.focusField(fieldB)
		return m, nil
	}

	a, errA := strconv.Atoi(aStr)
	b, errB := strconv.Atoi(bStr)
	if errA != nil || errB != nil || a <= 0 || b <= 0 {
		m.result = "Enter two positive integers (greater than 0)."
		return m, nil
	}

	res := approx.Approximate(m.cfg, a, b)
	rep := report.Build(m.cfg, a, b, res)
	m.result = report.Text(rep)
	m.recordHistory(rep)
	return m, nil
}

func (m *Model) recordHistory(rep report.Report) {
	if m.hist == nil {
		return
	}
	best := rep.Top
	switch {
	case rep.Exact != nil:
		m.hist.Record(rep.A, rep.B, rep.Mode, *rep.Exact)
	case rep.Pick != nil:
		m.hist.Record(rep.A, rep.B, rep.Mode, *rep.Pick)
	case len(best) > 0:
		m.hist.Record(rep.A, rep.B, rep.Mode, best[0])
	}
	if err := m.hist.Save(); err != nil {
		logrus.Debugf("saving history: %v", err)
	}
}
