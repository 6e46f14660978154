// Package cli implements the interactive console shell: a thin prompt loop
// that parses input, runs the approximation core, and renders via report.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/RxinnotRstar/ratio-finder/internal/approx"
	"github.com/RxinnotRstar/ratio-finder/internal/config"
	"github.com/RxinnotRstar/ratio-finder/internal/history"
	"github.com/RxinnotRstar/ratio-finder/internal/report"
)

const bannerWidth = 50

// REPL is the console loop. Hist may be nil when history is disabled.
type REPL struct {
	In       io.Reader
	Out      io.Writer
	Cfg      *config.Config
	Warnings []string
	Hist     *history.Store
}

// Run reads queries until EOF or a quit command. Parse errors print a message
// and continue; nothing from this layer ever reaches the core unvalidated.
func (r *REPL) Run() {
	fmt.Fprintln(r.Out, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(r.Out, "ratio-finder — console mode")
	fmt.Fprintln(r.Out, strings.Repeat("=", bannerWidth))
	report.PrintWarnings(r.Out, r.Warnings)

	scanner := bufio.NewScanner(r.In)
	for {
		fmt.Fprint(r.Out, "\nratio (q to quit) > ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			fmt.Fprintln(r.Out, "Bye.")
			return
		}

		a, b, err := ParseRatio(line)
		if err != nil {
			fmt.Fprintf(r.Out, " %v\n", err)
			continue
		}
		r.query(a, b)
	}
	if err := scanner.Err(); err != nil {
		logrus.Debugf("console read error: %v", err)
	}
}

// Once runs a single query and renders it, for one-shot invocations.
func (r *REPL) Once(a, b int, jsonOutput bool) {
	report.PrintWarnings(r.Out, r.Warnings)
	res := approx.Approximate(r.Cfg, a, b)
	rep := report.Build(r.Cfg, a, b, res)
	report.Print(r.Out, rep, jsonOutput)
	r.record(rep)
}

func (r *REPL) query(a, b int) {
	res := approx.Approximate(r.Cfg, a, b)
	rep := report.Build(r.Cfg, a, b, res)
	fmt.Fprintln(r.Out)
	report.Print(r.Out, rep, false)
	r.record(rep)
}

func (r *REPL) record(rep report.Report) {
	if r.Hist == nil {
		return
	}
	best := bestOf(rep)
	r.Hist.Record(rep.A, rep.B, rep.Mode, best)
	if err := r.Hist.Save(); err != nil {
		logrus.Debugf("saving history: %v", err)
	}
}

func bestOf(rep report.Report) approx.Candidate {
	switch {
	case rep.Exact != nil:
		return *rep.Exact
	case rep.Pick != nil:
		return *rep.Pick
	default:
		return rep.Top[0]
	}
}
