// Package report renders approximation results for the console and TUI
// shells. Both shells produce identical content for identical queries; the
// TUI re-styles the same lines rather than recomputing anything.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RxinnotRstar/ratio-finder/internal/approx"
	"github.com/RxinnotRstar/ratio-finder/internal/config"
)

// exactCaseMessage is the fixed decorative line shown with the out-of-range
// exact shortcut.
const exactCaseMessage = "Are you hunting for bugs, my dear?"

const dividerWidth = 45

// Report is the display-ready form of one query, including the out-of-range
// exact shortcut when it applies. Exact takes priority over everything the
// search returned.
type Report struct {
	A     int                `json:"a"`
	B     int                `json:"b"`
	Mode  string             `json:"mode"`
	Exact *approx.Candidate  `json:"exact,omitempty"`
	Pick  *approx.Candidate  `json:"pick,omitempty"`
	Top   []approx.Candidate `json:"top,omitempty"`
}

// Build assembles a Report from a search result, applying the exact-shortcut
// check that callers must run before rendering. When the shortcut fires the
// search output is discarded and the fixed exact answer wins.
func Build(cfg *config.Config, a, b int, res approx.Result) Report {
	if exact, ok := approx.ExactOutOfRange(cfg, a, b); ok {
		return Report{A: a, B: b, Mode: "exact", Exact: &exact}
	}
	return Report{A: a, B: b, Mode: res.Mode.String(), Pick: res.Pick, Top: res.Top}
}

// Print outputs the report in the requested format. If jsonOutput is true it
// prints machine-readable JSON; otherwise a human-readable block.
func Print(w io.Writer, r Report, jsonOutput bool) {
	if jsonOutput {
		output, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}
		fmt.Fprintln(w, string(output))
		return
	}
	fmt.Fprint(w, Text(r))
}

//nolint:gochecknoglobals // Shared lipgloss styles, immutable after init.
var (
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	pickStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Italic(true)
)

// Text renders the human-readable block for a report.
func Text(r Report) string {
	var b strings.Builder
	divider := dimStyle.Render(strings.Repeat("-", dividerWidth))

	if r.Exact != nil {
		fmt.Fprintf(&b, "Approximate ratio 1 [%d:%d]\n", r.Exact.Num, r.Exact.Den)
		fmt.Fprintf(&b, "     error %s\n\n", approx.FormatError(r.Exact.Err))
		b.WriteString(messageStyle.Render(exactCaseMessage))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(divider)
	b.WriteString("\n")

	switch r.Mode {
	case "limit_small", "limit_large":
		c := r.Top[0]
		fmt.Fprintf(&b, "Special ratio [%d:%d]\n", c.Num, c.Den)
		fmt.Fprintf(&b, "     error %s\n\n", approx.FormatError(c.Err))
		b.WriteString(warnStyle.Render(limitModeWarning()))
		b.WriteString("\n")
	default:
		if r.Pick != nil {
			fmt.Fprintf(&b, "%s\n     error %s\n",
				pickStyle.Render(fmt.Sprintf("Single-digit ratio [%d:%d]", r.Pick.Num, r.Pick.Den)),
				approx.FormatError(r.Pick.Err))
			b.WriteString(divider)
			b.WriteString("\n")
		}
		for i, c := range r.Top {
			fmt.Fprintf(&b, "Approximate ratio %d [%d:%d]\n     error %s\n",
				i+1, c.Num, c.Den, approx.FormatError(c.Err))
		}
	}

	b.WriteString(divider)
	b.WriteString("\n")
	return b.String()
}

func limitModeWarning() string {
	return strings.Join([]string{
		"Warning: outside the normal search range.",
		"The smaller value was locked to 1 and the",
		"best approximation computed from there.",
		"",
		"Note: this may not be the closest match.",
	}, "\n")
}

// PrintWarnings renders config substitution warnings, one per line.
func PrintWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintln(w, warnStyle.Render("⚠ "+msg))
	}
}
