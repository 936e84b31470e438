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

// Tailplot draws the density of a probability distribution with the
// tails highlighted.
//
// Usage:
//
//	tailplot <distribution>
//
// where <distribution> is one of "normal", "uniform", "laplace" or
// "exponential".  The plot is written to the file <distribution>.png
// in the current directory, using the standard form of the
// distribution and default colors.
package main

import (
	"fmt"
	"os"

	"seehuhn.de/go/tailplot"
	"seehuhn.de/go/tailplot/dist"
	"seehuhn.de/go/tailplot/pngplot"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <distribution>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "where <distribution> is one of %q, %q, %q or %q\n",
			dist.Normal, dist.Uniform, dist.Laplace, dist.Exponential)
		os.Exit(1)
	}
	name := dist.Name(os.Args[1])

	fmt.Printf("Creating plot for %s distribution.\n", name)

	fig, err := tailplot.Plot(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = pngplot.Save(fig, string(name)+".png")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s.png: %v\n", name, err)
		os.Exit(1)
	}
}
