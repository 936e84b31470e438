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

// An Interval is a closed interval [Min, Max] on the x axis.
type Interval struct {
	Min, Max float64
}

// Width returns the length of the interval.
func (r Interval) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether x lies in the closed interval r.
func (r Interval) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Tails returns the tail boundaries of a distribution with the given
// mean and standard deviation.  Outcomes more than three standard
// deviations from the mean count as tail events.
//
// For std == 0 the interval degenerates to the single point {mean};
// this is not an error.
func Tails(mean, std float64) Interval {
	return Interval{Min: mean - 3*std, Max: mean + 3*std}
}

// XRange returns the plotting range for a distribution with the given
// mean and standard deviation.  The range extends one standard
// deviation beyond the tail boundaries on both sides, so that the
// density is visibly close to zero at the edges of the plot.
//
// As for [Tails], std == 0 gives a degenerate interval.
func XRange(mean, std float64) Interval {
	return Interval{Min: mean - 4*std, Max: mean + 4*std}
}
