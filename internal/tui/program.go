// Package tui implements the form shell: a Bubble Tea program with two ratio
// fields that renders the same report content as the console shell.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/RxinnotRstar/ratio-finder/internal/config"
	"github.com/RxinnotRstar/ratio-finder/internal/history"
)

// Run starts the Bubble Tea program. Hist may be nil when history is
// disabled.
func Run(cfg *config.Config, warnings []string, hist *history.Store) error {
	model := NewModel(cfg, warnings, hist)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err := p.Run()
	return err
}
