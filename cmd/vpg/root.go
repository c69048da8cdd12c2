package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vpg/internal/timing"
	"github.com/katalvlaran/vpg/pgio"
)

// app is the state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfg    Config
	log    *logrus.Logger
	timing *timing.Timing

	verbosity string
	timings   bool
	format    string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, timing: timing.New()}

	root := &cobra.Command{
		Use:           "vpg",
		Short:         "Solve parity games and variability parity games",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.timings {
				return nil
			}
			return a.timing.Print(a.errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.verbosity, "verbosity", "v", "", "log level (panic, fatal, error, warning, info, debug, trace)")
	flags.BoolVar(&a.timings, "timings", false, "print phase timings to stderr")
	flags.StringVar(&a.format, "format", "", "game format (pg or vpg), inferred from the extension by default")

	root.AddCommand(a.solveCmd(), a.reachableCmd(), a.projectCmd())
	return root
}

// execute runs root and reports a failure on errOut.
func execute(root *cobra.Command, errOut io.Writer) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(errOut, "vpg: %v\n", err)
	}
	return err
}

func (a *app) setup() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.verbosity != "" {
		level = a.verbosity
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log = logrus.New()
	a.log.SetOutput(a.errOut)
	a.log.SetLevel(lvl)
	return nil
}

// formatOf resolves the format of path, honouring --format.
func (a *app) formatOf(path string) (pgio.Format, error) {
	override, err := pgio.ParseFormat(a.format)
	if err != nil {
		return pgio.Unknown, err
	}
	return pgio.GuessFormat(path, override)
}
