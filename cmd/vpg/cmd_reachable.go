package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/pgio"
	"github.com/katalvlaran/vpg/reachable"
)

// =============================================================================
// Reachable Command
// =============================================================================

func (a *app) reachableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reachable <file> <output>",
		Short: "Write the part of a game reachable from its initial vertex",
		Long: `Remove every vertex that cannot be reached from the initial vertex and
write the result to <output> in the input format. The initial vertex of the
result is vertex 0. With --verbosity debug the old to new vertex mapping is
logged.

Examples:
  vpg reachable game.pg trimmed.pg
  vpg reachable family.vpg trimmed.vpg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.formatOf(args[0])
			if err != nil {
				return err
			}
			if format == pgio.PG {
				return a.reachablePG(args[0], args[1])
			}
			return a.reachableVPG(args[0], args[1])
		},
	}
}

func (a *app) reachablePG(in, out string) error {
	g, err := a.readPG(in)
	if err != nil {
		return err
	}

	t := a.timing.Start("reachable")
	trimmed, mapping, err := reachable.ComputeReachable(g)
	t.Finish()
	if err != nil {
		return err
	}
	a.logMapping(mapping, trimmed.NumVertices())

	return a.writeFile(out, func(f *os.File) error { return pgio.WritePG(f, trimmed) })
}

func (a *app) reachableVPG(in, out string) error {
	g, err := a.readVPG(in)
	if err != nil {
		return err
	}

	t := a.timing.Start("reachable")
	trimmed, mapping, err := reachable.ComputeReachableVariability(g)
	t.Finish()
	if err != nil {
		return err
	}
	a.logMapping(mapping, trimmed.NumVertices())

	return a.writeFile(out, func(f *os.File) error { return pgio.WriteVPG(f, trimmed) })
}

func (a *app) logMapping(mapping []game.VertexIndex, kept int) {
	log := a.log.WithField("kept", kept).WithField("removed", len(mapping)-kept)
	log.Info("reachable part computed")
	for old, v := range mapping {
		if v != reachable.Unreachable {
			log.WithField("old", old).WithField("new", v).Debug("vertex mapping")
		}
	}
}
