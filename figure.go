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

// Package tailplot computes figures which show the density of a
// continuous probability distribution, with the tails of the
// distribution highlighted in a separate color.  A tail event is an
// outcome more than three standard deviations away from the mean.
//
// The [Plot] function turns a distribution name into a [Figure].  A
// Figure is a plain value owned by the caller; the renderers in the
// pdfplot and pngplot sub-packages turn it into a PDF or PNG file.
package tailplot

import (
	"fmt"

	"seehuhn.de/go/tailplot/dist"
)

// Default styling, as used by the tailplot command.
const (
	DefaultN           = 100
	DefaultTailColor   = "#ff0000"
	DefaultCenterColor = "#e6ffff"
)

// A Region classifies a point on the x axis relative to the tail
// boundaries of a distribution.
type Region int

// The three regions of a density plot.  Points exactly on a tail
// boundary belong to the center region.
const (
	LeftTail Region = iota
	Center
	RightTail
)

// Figure holds all data needed to draw a tail event plot.  Figures are
// created by [Plot] and consumed by the renderers; they hold no
// references to shared state and need no explicit disposal.
type Figure struct {
	Distribution dist.Name

	// X and Y are the sampled density curve.  The slices have equal
	// length, X is increasing and spans XRange.
	X, Y []float64

	// Mean is the expected value of the distribution.
	Mean float64

	// Tails holds the tail boundaries, mean ± 3 std.
	Tails Interval

	// XRange holds the plotting range, mean ± 4 std.
	XRange Interval

	// YMax is the upper limit of the y axis, chosen as 1.2 times the
	// largest sampled density value to leave some headroom above the
	// curve.
	YMax float64

	TailColor   RGB
	CenterColor RGB

	Title  string
	XLabel string
	YLabel string
}

// Region returns the region the point x belongs to.  Tail membership
// is strict: points exactly on a boundary count as center.
func (f *Figure) Region(x float64) Region {
	switch {
	case x < f.Tails.Min:
		return LeftTail
	case x > f.Tails.Max:
		return RightTail
	default:
		return Center
	}
}

type options struct {
	n           int
	tailColor   string
	centerColor string
	params      dist.Params
}

// An Option modifies the behaviour of [Plot].
type Option func(*options)

// WithN sets the number of sample points on the x axis.  The default
// is [DefaultN].
func WithN(n int) Option {
	return func(o *options) { o.n = n }
}

// WithTailColor sets the fill color for the tail regions, as a hex
// string like "#ff0000".
func WithTailColor(hex string) Option {
	return func(o *options) { o.tailColor = hex }
}

// WithCenterColor sets the fill color for the central region, as a hex
// string like "#e6ffff".
func WithCenterColor(hex string) Option {
	return func(o *options) { o.centerColor = hex }
}

// WithParams sets the location and scale parameters of the
// distribution.  The default is [dist.DefaultParams], the standard
// form of each family.
func WithParams(p dist.Params) Option {
	return func(o *options) { o.params = p }
}

// Plot computes the tail event figure for the named distribution.
//
// The distribution is resolved via [dist.Resolve], its mean and
// standard deviation determine the plotting range (mean ± 4 std) and
// the tail boundaries (mean ± 3 std), and the density is sampled on an
// even grid across the plotting range.
//
// Plot is deterministic: two calls with the same arguments return
// figures with identical sample values.
func Plot(name dist.Name, opts ...Option) (*Figure, error) {
	o := options{
		n:           DefaultN,
		tailColor:   DefaultTailColor,
		centerColor: DefaultCenterColor,
		params:      dist.DefaultParams(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	tailColor, err := ParseColor(o.tailColor)
	if err != nil {
		return nil, err
	}
	centerColor, err := ParseColor(o.centerColor)
	if err != nil {
		return nil, err
	}

	d, err := dist.Resolve(name, o.params)
	if err != nil {
		return nil, err
	}

	mean := d.Mean()
	std := d.StdDev()
	xRange := XRange(mean, std)

	xs, ys, err := Sample(d, xRange, o.n)
	if err != nil {
		return nil, err
	}

	yMax := 0.0
	for _, y := range ys {
		if y > yMax {
			yMax = y
		}
	}

	fig := &Figure{
		Distribution: name,
		X:            xs,
		Y:            ys,
		Mean:         mean,
		Tails:        Tails(mean, std),
		XRange:       xRange,
		YMax:         1.2 * yMax,
		TailColor:    tailColor,
		CenterColor:  centerColor,
		Title:        fmt.Sprintf("Tail events for %s distribution", name),
		XLabel:       "x",
		YLabel:       "f(x)",
	}
	return fig, nil
}
