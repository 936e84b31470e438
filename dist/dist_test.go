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

package dist

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResolve(t *testing.T) {
	for _, name := range Names {
		d, err := Resolve(name, DefaultParams())
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if d.Name() != name {
			t.Errorf("%s: got name %q", name, d.Name())
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("gamma", DefaultParams())
	var e *UnknownDistributionError
	if !errors.As(err, &e) {
		t.Fatalf("got %v, want UnknownDistributionError", err)
	}
	msg := err.Error()
	for _, name := range Names {
		if !strings.Contains(msg, string(name)) {
			t.Errorf("error message %q does not mention %q", msg, name)
		}
	}
}

func TestInvalidScale(t *testing.T) {
	for _, name := range Names {
		for _, scale := range []float64{0, -1, math.NaN()} {
			_, err := Resolve(name, Params{Loc: 0, Scale: scale})
			var e *InvalidParameterError
			if !errors.As(err, &e) {
				t.Errorf("%s, scale %g: got %v, want InvalidParameterError",
					name, scale, err)
			}
		}
	}
}

type moments struct {
	Mean, StdDev float64
}

func TestMoments(t *testing.T) {
	cases := []struct {
		name   Name
		params Params
		want   moments
	}{
		{Normal, DefaultParams(), moments{0, 1}},
		{Normal, Params{2, 3}, moments{2, 3}},
		{Uniform, DefaultParams(), moments{0.5, 1 / math.Sqrt(12)}},
		{Uniform, Params{2, 3}, moments{3.5, 3 / math.Sqrt(12)}},
		{Laplace, DefaultParams(), moments{0, math.Sqrt2}},
		{Laplace, Params{2, 3}, moments{2, 3 * math.Sqrt2}},
		{Exponential, DefaultParams(), moments{1, 1}},
		{Exponential, Params{2, 3}, moments{5, 3}},
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	for _, c := range cases {
		d, err := Resolve(c.name, c.params)
		if err != nil {
			t.Errorf("%s %+v: %v", c.name, c.params, err)
			continue
		}
		got := moments{d.Mean(), d.StdDev()}
		if diff := cmp.Diff(c.want, got, opt); diff != "" {
			t.Errorf("%s %+v: moments differ (-want +got):\n%s",
				c.name, c.params, diff)
		}
	}
}

func TestPDF(t *testing.T) {
	cases := []struct {
		name   Name
		params Params
		x      float64
		want   float64
	}{
		{Normal, DefaultParams(), 0, 1 / math.Sqrt(2*math.Pi)},
		{Normal, DefaultParams(), 100, 0},
		{Uniform, DefaultParams(), 0.5, 1},
		{Uniform, DefaultParams(), 2, 0},
		{Uniform, Params{2, 3}, 3, 1.0 / 3},
		{Laplace, DefaultParams(), 0, 0.5},
		{Laplace, DefaultParams(), 1, 0.5 * math.Exp(-1)},
		{Exponential, DefaultParams(), -1, 0},
		{Exponential, DefaultParams(), 1, math.Exp(-1)},
		{Exponential, Params{2, 1}, 1.9, 0},
		{Exponential, Params{2, 1}, 3, math.Exp(-1)},
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	for _, c := range cases {
		d, err := Resolve(c.name, c.params)
		if err != nil {
			t.Errorf("%s %+v: %v", c.name, c.params, err)
			continue
		}
		got := d.PDF(c.x)
		if diff := cmp.Diff(c.want, got, opt); diff != "" {
			t.Errorf("%s %+v: pdf(%g) differs (-want +got):\n%s",
				c.name, c.params, c.x, diff)
		}
	}
}
