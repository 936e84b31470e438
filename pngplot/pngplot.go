// seehuhn.de/go/tailplot - visualise the tails of probability distributions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pngplot renders tail event figures as PNG images, using
// gonum.org/v1/plot.
package pngplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/tailplot"
)

// Save renders fig as a 9in x 6in raster image and writes it to the
// file with the given name.  The image format is determined by the
// file name extension; ".png" gives a PNG file.
func Save(fig *tailplot.Figure, fileName string) error {
	p, err := build(fig)
	if err != nil {
		return err
	}
	return p.Save(9*vg.Inch, 6*vg.Inch, fileName)
}

// build assembles the gonum plot for fig.
func build(fig *tailplot.Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.Title.TextStyle.Font.Size = 16
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.X.Min = fig.XRange.Min
	p.X.Max = fig.XRange.Max
	p.Y.Min = 0
	p.Y.Max = fig.YMax

	// only the shape of the density matters, so the y axis carries no
	// tick labels
	p.Y.Tick.Marker = plot.ConstantTicks(nil)

	// the full curve in the center color, then the two tails on top
	err := addFill(p, fig, fig.CenterColor.RGBA(),
		func(x float64) bool { return true })
	if err != nil {
		return nil, err
	}
	err = addFill(p, fig, fig.TailColor.RGBA(),
		func(x float64) bool { return x < fig.Tails.Min })
	if err != nil {
		return nil, err
	}
	err = addFill(p, fig, fig.TailColor.RGBA(),
		func(x float64) bool { return x > fig.Tails.Max })
	if err != nil {
		return nil, err
	}

	// reference lines: solid at the tail boundaries, dashed at the mean
	for _, x := range []float64{fig.Tails.Min, fig.Tails.Max} {
		err = addVLine(p, fig, x, nil)
		if err != nil {
			return nil, err
		}
	}
	err = addVLine(p, fig, fig.Mean, []vg.Length{vg.Points(5), vg.Points(3)})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// addFill adds the area between the x axis and the density curve,
// restricted to the sample points selected by where, as a filled
// polygon.
func addFill(p *plot.Plot, fig *tailplot.Figure, c color.Color, where func(x float64) bool) error {
	start := -1
	for i, x := range fig.X {
		if where(x) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			err := addFillRun(p, fig, c, start, i)
			if err != nil {
				return err
			}
			start = -1
		}
	}
	if start >= 0 {
		return addFillRun(p, fig, c, start, len(fig.X))
	}
	return nil
}

func addFillRun(p *plot.Plot, fig *tailplot.Figure, c color.Color, start, end int) error {
	if end-start < 2 {
		return nil
	}
	pts := make(plotter.XYs, 0, end-start+2)
	pts = append(pts, plotter.XY{X: fig.X[start], Y: 0})
	for i := start; i < end; i++ {
		pts = append(pts, plotter.XY{X: fig.X[i], Y: fig.Y[i]})
	}
	pts = append(pts, plotter.XY{X: fig.X[end-1], Y: 0})

	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	poly.Color = c
	poly.LineStyle.Color = c
	p.Add(poly)
	return nil
}

// addVLine adds a vertical line at x spanning the full height of the
// plot.  A non-nil dashes pattern gives a dashed line.
func addVLine(p *plot.Plot, fig *tailplot.Figure, x float64, dashes []vg.Length) error {
	if !fig.XRange.Contains(x) {
		return nil
	}
	line, err := plotter.NewLine(plotter.XYs{
		{X: x, Y: 0},
		{X: x, Y: fig.YMax},
	})
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.Black
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = dashes
	p.Add(line)
	return nil
}
