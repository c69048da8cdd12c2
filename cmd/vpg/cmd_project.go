package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vpg/pgio"
	"github.com/katalvlaran/vpg/variability"
)

// =============================================================================
// Project Command
// =============================================================================

func (a *app) projectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project <file.vpg> <selection> <output.pg>",
		Short: "Project a variability parity game onto a feature selection",
		Long: `Write the parity game obtained by keeping every edge that exists for at
least one configuration in <selection>. The selection is a '+'-separated
list of cubes over '0', '1' and '-' with one character per feature.

Examples:
  vpg project family.vpg 10 member.pg
  vpg project family.vpg "1-+01" part.pg`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readVPG(args[0])
			if err != nil {
				return err
			}
			sel, err := variability.SelectionFunc(g.Manager(), args[1])
			if err != nil {
				return err
			}

			t := a.timing.Start("project")
			pg, err := variability.Project(g, sel)
			t.Finish()
			if err != nil {
				return err
			}
			a.log.WithField("edges", pg.NumEdges()).Info("projected")

			return a.writeFile(args[2], func(f *os.File) error { return pgio.WritePG(f, pg) })
		},
	}
}
