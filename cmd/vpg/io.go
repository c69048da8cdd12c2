package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/features"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/pgio"
	"github.com/katalvlaran/vpg/variability"
)

func (a *app) readPG(path string) (*game.ParityGame, error) {
	defer a.timing.Start("read").Finish()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := pgio.ReadPG(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.WithFields(logrus.Fields{"file": path, "vertices": g.NumVertices(), "edges": g.NumEdges()}).Info("read parity game")
	return g, nil
}

func (a *app) readVPG(path string) (*variability.Game, error) {
	defer a.timing.Start("read").Finish()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := pgio.ReadVPG(f, a.cfg.bddOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.WithFields(logrus.Fields{
		"file":     path,
		"vertices": g.NumVertices(),
		"edges":    g.NumEdges(),
		"features": g.Manager().Features(),
	}).Info("read variability parity game")
	return g, nil
}

// restrictToModel narrows the family of g to the models of a DIMACS CNF
// feature model.
func (a *app) restrictToModel(g *variability.Game, path string) (*variability.Game, error) {
	defer a.timing.Start("features").Finish()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	model, err := features.Load(f, g.Manager())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return variability.Restrict(g, model)
}

func (a *app) writeFile(path string, write func(f *os.File) error) (err error) {
	defer a.timing.Start("write").Finish()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// printCubes writes one "<cube> <label>" line per cube of f.
func (a *app) printCubes(mgr *boolfn.Manager, f boolfn.Function, label string) error {
	return mgr.Cubes(f, func(cube []int8) error {
		_, err := fmt.Fprintf(a.out, "%s %s\n", boolfn.FormatCube(cube), label)
		return err
	})
}
