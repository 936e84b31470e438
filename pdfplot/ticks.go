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

package pdfplot

import (
	"math"
	"strconv"

	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tailplot"
)

func deviceRGB(c tailplot.RGB) color.Color {
	return color.DeviceRGB(c.R, c.G, c.B)
}

// ticks returns round tick positions covering the interval r, using a
// 1-2-5 step sequence and aiming for roughly six ticks.
func ticks(r tailplot.Interval) []float64 {
	w := r.Width()
	if w <= 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return nil
	}

	raw := w / 6
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	var step float64
	switch {
	case raw/mag < 1.5:
		step = mag
	case raw/mag < 3.5:
		step = 2 * mag
	case raw/mag < 7.5:
		step = 5 * mag
	default:
		step = 10 * mag
	}

	var res []float64
	for i := math.Ceil(r.Min / step); i*step <= r.Max+step/1e6; i++ {
		res = append(res, i*step)
	}
	return res
}

func formatTick(x float64) string {
	// avoid "-0"
	if x == 0 {
		x = 0
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}
