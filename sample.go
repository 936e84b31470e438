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

package tailplot

import (
	"fmt"

	"seehuhn.de/go/tailplot/dist"
)

// Sample evaluates the density of d on a grid of n evenly spaced
// points covering the interval r.  The first grid point is r.Min, the
// last is r.Max.  The returned slices have length n each.
//
// Sample returns an error if n < 2, since fewer points cannot span an
// interval.
func Sample(d dist.Distribution, r Interval, n int) (xs, ys []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("need at least 2 sample points, got %d", n)
	}

	xs = make([]float64, n)
	ys = make([]float64, n)
	step := r.Width() / float64(n-1)
	for i := range xs {
		x := r.Min + float64(i)*step
		if i == n-1 {
			x = r.Max
		}
		xs[i] = x
		ys[i] = d.PDF(x)
	}
	return xs, ys, nil
}
