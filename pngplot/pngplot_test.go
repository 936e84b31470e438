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

package pngplot

import (
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/tailplot"
	"seehuhn.de/go/tailplot/dist"
)

func TestSave(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range dist.Names {
		fig, err := tailplot.Plot(name)
		if err != nil {
			t.Fatal(err)
		}

		fileName := filepath.Join(tmp, string(name)+".png")
		err = Save(fig, fileName)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		fi, err := os.Stat(fileName)
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() == 0 {
			t.Errorf("%s: empty image file", name)
		}
	}
}

func TestBuild(t *testing.T) {
	fig, err := tailplot.Plot(dist.Uniform)
	if err != nil {
		t.Fatal(err)
	}
	p, err := build(fig)
	if err != nil {
		t.Fatal(err)
	}
	if p.Y.Max != fig.YMax {
		t.Errorf("y axis maximum = %g, want %g", p.Y.Max, fig.YMax)
	}
	if p.Y.Min != 0 {
		t.Errorf("y axis minimum = %g, want 0", p.Y.Min)
	}
}
