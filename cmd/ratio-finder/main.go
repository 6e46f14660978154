package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RxinnotRstar/ratio-finder/internal/approx"
	"github.com/RxinnotRstar/ratio-finder/internal/cli"
	"github.com/RxinnotRstar/ratio-finder/internal/config"
	"github.com/RxinnotRstar/ratio-finder/internal/history"
	"github.com/RxinnotRstar/ratio-finder/internal/report"
	"github.com/RxinnotRstar/ratio-finder/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile     = "~/.config/ratio-finder/config.yaml"
	historyFile    = "~/.local/share/ratio-finder/history.json"
	verbose        bool
	jsonOutput     bool
	tuiMode        bool
	noHistory      bool
	maxDenominator int
	threshold      float64

	rootCmd = &cobra.Command{
		Use:   "ratio-finder [A B | A:B]",
		Short: "Approximate a ratio by simpler fractions with small denominators.",
		Long: `ratio-finder searches for reduced fractions that approximate a given ratio,
ranks them by approximation error, and highlights "nice" single-digit ratios.
With two arguments it computes once and exits; without arguments it starts an
interactive console, or a windowed form with --tui.`,
		Args: cobra.MaximumNArgs(2),
		Run:  runRoot,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format instead of rich text")
	rootCmd.PersistentFlags().BoolVar(&tuiMode, "tui", false, "Start the interactive form UI")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", configFile, "Path to an optional YAML config file")
	rootCmd.PersistentFlags().StringVar(&historyFile, "history-file", historyFile, "Path to the query history file")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not record queries to the history file")
	rootCmd.PersistentFlags().
		IntVar(&maxDenominator, "max-denominator", 0, "Override the search bound (integer >= 1)")
	rootCmd.PersistentFlags().
		Float64Var(&threshold, "threshold", 0, "Override the single-digit preference threshold (0..1)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// logLevelFor picks the log level: warnings only by default so console and
// --json output stay clean, debug with --verbose.
func logLevelFor(verbose bool) logrus.Level {
	if verbose {
		return logrus.DebugLevel
	}
	return logrus.WarnLevel
}

// loadConfig builds the effective configuration: file first, then flag
// overrides, both through the same validation with silent-default fallback.
func loadConfig(cmd *cobra.Command) (*config.Config, []string) {
	cfg, warnings, err := config.Load(configFile)
	if err != nil {
		logrus.Fatalf("Unable to load config: %v", err)
	}
	warnings = append(warnings, cfg.ApplyOverrides(maxDenominator, threshold, cmd.Flags().Changed("threshold"))...)
	return cfg, warnings
}

func openHistory() *history.Store {
	if noHistory {
		return nil
	}
	st, err := history.NewStore(historyFile)
	if err != nil {
		logrus.Debugf("history unavailable: %v", err)
		return nil
	}
	return st
}

func runRoot(cmd *cobra.Command, args []string) {
	if jsonOutput && tuiMode {
		logrus.Fatal("Cannot use --json and --tui flags together")
	}

	logrus.SetLevel(logLevelFor(verbose))

	cfg, warnings := loadConfig(cmd)
	hist := openHistory()

	// One-shot: "ratio-finder 16 9" or "ratio-finder 16:9".
	if len(args) > 0 {
		input := args[0]
		if len(args) == 2 {
			input = args[0] + " " + args[1]
		}
		a, b, err := cli.ParseRatio(input)
		if err != nil {
			logrus.Fatalf("Invalid ratio %q: %v", input, err)
		}
		r := &cli.REPL{Out: os.Stdout, Cfg: cfg, Warnings: warnings, Hist: hist}
		r.Once(a, b, jsonOutput)
		return
	}

	if tuiMode {
		if err := tui.Run(cfg, warnings, hist); err != nil {
			logrus.Fatalf("TUI mode failed: %v", err)
		}
		return
	}

	r := &cli.REPL{In: os.Stdin, Out: os.Stdout, Cfg: cfg, Warnings: warnings, Hist: hist}
	r.Run()
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "Print the effective configuration after file and flag overrides, plus any values that were reset to defaults.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, warnings := loadConfig(cmd)
		fmt.Fprintf(os.Stdout, "max_denominator: %d\n", cfg.MaxDenominator)
		fmt.Fprintf(os.Stdout, "single_digit_threshold: %g\n", cfg.SingleDigitThreshold)
		report.PrintWarnings(os.Stdout, warnings)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent queries",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := history.NewStore(historyFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if len(st.Data.Entries) == 0 {
			fmt.Fprintln(os.Stdout, "No history yet")
			return
		}
		for _, e := range st.Data.Entries {
			fmt.Fprintf(os.Stdout, "%s  %d:%d -> %d:%d (%s, %s)\n",
				e.At.Format("2006-01-02 15:04:05"), e.A, e.B, e.Num, e.Den, e.Mode, approx.FormatError(e.Err))
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the query history",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := history.NewStore(historyFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := st.Clear(); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, "History cleared")
	},
}

func main() {
	Execute()
}
