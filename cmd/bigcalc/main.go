package main

import (
	"bufio"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bigint/calc"
)

var (
	exprFlag   string
	configFlag string

	errColor    = color.New(color.FgRed, color.Bold)
	promptColor = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "bigcalc [file ...]",
	Short: "Arbitrary-precision RPN calculator",
	Long: `bigcalc is a dc-style reverse polish calculator over arbitrary-precision
integers. It evaluates the files given as arguments, or the -e expression,
or otherwise reads commands from standard input.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = "0.1.0"
	rootCmd.Flags().StringVarP(&exprFlag, "expr", "e", "", "evaluate expression and exit")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "path to TOML config file")

	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFlag)
	if err != nil {
		return err
	}
	switch cfg.Color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default: // auto
		color.NoColor = !isTerminal(os.Stderr)
	}

	m := calc.New(os.Stdout)

	if exprFlag != "" {
		return m.Eval(exprFlag)
	}

	for _, path := range args {
		if err := evalFile(m, path); err != nil {
			return err
		}
		if m.Quit() {
			return nil
		}
	}
	if len(args) > 0 {
		return nil
	}

	return repl(m, cfg)
}

func evalFile(m *calc.Machine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if err := m.Eval(sc.Text()); err != nil {
			return err
		}
		if m.Quit() {
			return nil
		}
	}

	return sc.Err()
}

// repl evaluates standard input line by line. Errors are reported and the
// loop continues; only q or end of input ends the session. The prompt is
// only written when stdin is a terminal so piped input stays clean.
func repl(m *calc.Machine, cfg config) error {
	interactive := isTerminal(os.Stdin)

	sc := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			promptColor.Fprint(os.Stderr, cfg.Prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if err := m.Eval(sc.Text()); err != nil {
			errColor.Fprintln(os.Stderr, err)
		}
		if m.Quit() {
			return nil
		}
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
