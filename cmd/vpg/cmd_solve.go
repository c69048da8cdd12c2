package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vpg/pgio"
	"github.com/katalvlaran/vpg/zielonka"
)

// =============================================================================
// Solve Command
// =============================================================================

func (a *app) solveCmd() *cobra.Command {
	var (
		product      bool
		featureModel string
	)
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a parity game or a variability parity game",
		Long: `Solve the game in <file> and report the winner of its initial vertex.

For a parity game the output is "true" if player Even wins and "false"
otherwise. For a variability parity game every cube of the configurations
won by Even is printed followed by "true", then every cube won by Odd
followed by "false".

Examples:
  vpg solve game.pg
  vpg solve --product family.vpg
  vpg solve --features model.dimacs family.vpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.formatOf(args[0])
			if err != nil {
				return err
			}
			if format == pgio.PG {
				if product || featureModel != "" {
					return fmt.Errorf("--product and --features apply to variability games only")
				}
				return a.solvePG(args[0])
			}
			return a.solveVPG(args[0], featureModel, product)
		},
	}
	cmd.Flags().BoolVar(&product, "product", false, "solve every member game separately instead of the lifted family")
	cmd.Flags().StringVar(&featureModel, "features", "", "DIMACS CNF feature model restricting the configurations")
	return cmd
}

func (a *app) solvePG(path string) error {
	g, err := a.readPG(path)
	if err != nil {
		return err
	}

	t := a.timing.Start("solve")
	sol, err := zielonka.Solve(g, a.cfg.solverOptions(a.log)...)
	t.Finish()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, sol.InitialWinner().Solution())
	return err
}

func (a *app) solveVPG(path, featureModel string, product bool) error {
	g, err := a.readVPG(path)
	if err != nil {
		return err
	}
	if featureModel != "" {
		if g, err = a.restrictToModel(g, featureModel); err != nil {
			return err
		}
	}

	solve := zielonka.SolveVariability
	if product {
		solve = zielonka.SolveProduct
	}
	t := a.timing.Start("solve")
	sol, err := solve(g, a.cfg.solverOptions(a.log)...)
	t.Finish()
	if err != nil {
		return err
	}

	initial := sol.InitialVertex()
	if err := a.printCubes(sol.Manager(), sol.Even(initial), "true"); err != nil {
		return err
	}
	return a.printCubes(sol.Manager(), sol.Odd(initial), "false")
}
