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

// Package pdfplot renders tail event figures as single-page PDF files.
package pdfplot

import (
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tailplot"
)

// The page is 9in x 6in, the proportions of the figures produced by
// the pngplot package.
var paper = &pdf.Rectangle{URx: 648, URy: 432}

// Margins of the plot area inside the page, in PDF units.
const (
	marginLeft   = 72
	marginRight  = 36
	marginBottom = 64
	marginTop    = 54
)

// Save renders fig as a one-page PDF document and writes it to the
// file with the given name.
func Save(fig *tailplot.Figure, fileName string) error {
	page, err := document.CreateSinglePage(fileName, paper, pdf.V2_0, nil)
	if err != nil {
		return err
	}
	err = draw(page, fig)
	if err != nil {
		return err
	}
	return page.Close()
}

// Write renders fig as a one-page PDF document and writes it to w.
func Write(fig *tailplot.Figure, w io.Writer) error {
	page, err := document.WriteSinglePage(w, paper, pdf.V2_0, nil)
	if err != nil {
		return err
	}
	err = draw(page, fig)
	if err != nil {
		return err
	}
	return page.Close()
}

// plotArea maps data coordinates to page coordinates.
type plotArea struct {
	fig                      *tailplot.Figure
	xMin, xScale             float64
	yScale                   float64
	left, right, bottom, top float64
}

func newPlotArea(fig *tailplot.Figure) *plotArea {
	a := &plotArea{
		fig:    fig,
		left:   marginLeft,
		right:  paper.URx - marginRight,
		bottom: marginBottom,
		top:    paper.URy - marginTop,
	}
	a.xMin = fig.XRange.Min
	a.xScale = (a.right - a.left) / fig.XRange.Width()
	a.yScale = (a.top - a.bottom) / fig.YMax
	return a
}

func (a *plotArea) x(x float64) float64 {
	return a.left + (x-a.xMin)*a.xScale
}

func (a *plotArea) y(y float64) float64 {
	return a.bottom + y*a.yScale
}

func draw(page *document.Page, fig *tailplot.Figure) error {
	labelFont := standard.Helvetica.New()

	a := newPlotArea(fig)
	black := color.DeviceGray(0)

	// the full curve in the center color, then the two tails on top
	page.SetFillColor(deviceRGB(fig.CenterColor))
	fillUnderCurve(page, a, func(x float64) bool { return true })
	page.SetFillColor(deviceRGB(fig.TailColor))
	fillUnderCurve(page, a, func(x float64) bool { return x < fig.Tails.Min })
	fillUnderCurve(page, a, func(x float64) bool { return x > fig.Tails.Max })

	// reference lines: solid at the tail boundaries, dashed at the mean
	page.SetStrokeColor(black)
	page.SetLineWidth(1)
	for _, x := range []float64{fig.Tails.Min, fig.Tails.Max} {
		if !fig.XRange.Contains(x) {
			continue
		}
		page.MoveTo(a.x(x), a.bottom)
		page.LineTo(a.x(x), a.top)
	}
	page.Stroke()
	page.PushGraphicsState()
	page.SetLineDash([]float64{4, 3}, 0)
	page.MoveTo(a.x(fig.Mean), a.bottom)
	page.LineTo(a.x(fig.Mean), a.top)
	page.Stroke()
	page.PopGraphicsState()

	// the frame of the plot area
	page.Rectangle(a.left, a.bottom, a.right-a.left, a.top-a.bottom)
	page.Stroke()

	// x ticks with labels; the y axis deliberately has no ticks, since
	// only the shape of the density matters, not its absolute scale
	page.SetFillColor(black)
	for _, x := range ticks(fig.XRange) {
		page.MoveTo(a.x(x), a.bottom)
		page.LineTo(a.x(x), a.bottom-4)
	}
	page.Stroke()
	page.TextBegin()
	page.TextSetFont(labelFont, 11)
	first := true
	var prev float64
	for _, x := range ticks(fig.XRange) {
		gg := page.TextLayout(nil, formatTick(x))
		pos := a.x(x) - gg.TotalWidth()/2
		if first {
			page.TextFirstLine(pos, a.bottom-16)
			first = false
		} else {
			page.TextFirstLine(pos-prev, 0)
		}
		prev = pos
		page.TextShowGlyphs(gg)
	}
	page.TextEnd()

	// title and axis labels
	page.TextBegin()
	page.TextSetFont(labelFont, 16)
	gg := page.TextLayout(nil, fig.Title)
	page.TextFirstLine((a.left+a.right-gg.TotalWidth())/2, a.top+18)
	page.TextShowGlyphs(gg)
	page.TextEnd()

	page.TextBegin()
	page.TextSetFont(labelFont, 14)
	gg = page.TextLayout(nil, fig.XLabel)
	page.TextFirstLine((a.left+a.right-gg.TotalWidth())/2, a.bottom-36)
	page.TextShowGlyphs(gg)
	page.TextEnd()

	page.TextBegin()
	page.TextSetFont(labelFont, 14)
	gg = page.TextLayout(nil, fig.YLabel)
	page.TextSetMatrix(matrix.Rotate(math.Pi / 2).Mul(matrix.Translate(
		a.left-24, (a.bottom+a.top-gg.TotalWidth())/2)))
	page.TextShowGlyphs(gg)
	page.TextEnd()

	return nil
}

// fillUnderCurve fills the area between the x axis and the density
// curve, restricted to the sample points selected by the where
// function.
func fillUnderCurve(page *document.Page, a *plotArea, where func(x float64) bool) {
	fig := a.fig
	start := -1
	for i, x := range fig.X {
		if where(x) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			fillRun(page, a, start, i)
			start = -1
		}
	}
	if start >= 0 {
		fillRun(page, a, start, len(fig.X))
	}
}

// fillRun fills the region below the curve segment fig.X[start:end].
func fillRun(page *document.Page, a *plotArea, start, end int) {
	if end-start < 2 {
		return
	}
	fig := a.fig
	page.MoveTo(a.x(fig.X[start]), a.y(0))
	for i := start; i < end; i++ {
		page.LineTo(a.x(fig.X[i]), a.y(fig.Y[i]))
	}
	page.LineTo(a.x(fig.X[end-1]), a.y(0))
	page.ClosePath()
	page.Fill()
}
