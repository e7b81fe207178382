/*
 * chemplot.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

//Package chemplot produces diagnostic plots for the solvent datasets and
//for assembled explicit-solvation shells. Plots are written as PNG files.
package chemplot

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/danielhollas/autodE/solvent"
)

func basicPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Add(plotter.NewGrid())
	return p
}

//DielectricRank plots the dielectric constants of every record in the
//registry that has one, sorted in decreasing order, and saves the plot as
//plotname.png. Records with no tabulated dielectric are left out (the
//lookup logs each miss).
func DielectricRank(r *solvent.Registry, title, plotname string) error {
	if r == nil {
		r = solvent.Default()
	}
	var eps []float64
	for _, s := range r.Find(nil) {
		if e, ok := s.Dielectric(r); ok {
			eps = append(eps, e)
		}
	}
	if len(eps) == 0 {
		return fmt.Errorf("chemplot: no dielectric data in the registry")
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(eps)))
	pts := make(plotter.XYs, len(eps))
	for i, e := range eps {
		pts[i].X = float64(i + 1)
		pts[i].Y = e
	}
	p := basicPlot(title, "Rank", "Dielectric constant")
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(s)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

//ShellHistogram plots a histogram of the solvent-shell distances of an
//assembled explicit solvent (see ExplicitSolvent.ShellDistances) and
//saves it as plotname.png.
func ShellHistogram(dists []float64, title, plotname string) error {
	if len(dists) == 0 {
		return fmt.Errorf("chemplot: no shell distances given")
	}
	h, err := plotter.NewHist(plotter.Values(dists), 16)
	if err != nil {
		return err
	}
	p := basicPlot(title, "Distance from solute (A)", "Count")
	p.Add(h)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}
