package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // Shared lipgloss styles, immutable after init.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(0, 1)
	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ratio-finder"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Approximate a ratio by simpler fractions"))
	b.WriteString("\n\n")

	if m.warningsVisible {
		b.WriteString(warnBoxStyle.Render(renderWarnings(m.warnings)))
		b.WriteString("\n\n")
	}

	form := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.inputA.View(),
		"  :  ",
		m.inputB.View(),
	)
	b.WriteString(formStyle.Render(form))
	b.WriteString("\n\n")

	if m.result != "" {
		result := m.result
		if m.width > 0 && m.width < resultViewportMax {
			result = lipgloss.NewStyle().Width(m.width).Render(result)
		}
		b.WriteString(result)
		b.WriteString("\n")
	}

	b.WriteString(renderFooter(m.warningsVisible))
	return b.String()
}

func renderWarnings(warnings []string) string {
	lines := make([]string, 0, len(warnings)+1)
	lines = append(lines, "Configuration auto-corrected:")
	for _, w := range warnings {
		lines = append(lines, "• "+w)
	}
	return strings.Join(lines, "\n")
}

func renderFooter(warningsVisible bool) string {
	help := "enter: compute • tab: switch field • ctrl+l: clear • esc: quit"
	if warningsVisible {
		help += " • w: dismiss warnings"
	}
	return subtleStyle.Render(help)
}
