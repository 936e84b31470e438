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
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
	}{
		{"#ff0000", RGB{1, 0, 0}},
		{"#e6ffff", RGB{230.0 / 255, 1, 1}},
		{"#000000", RGB{0, 0, 0}},
		{"#abc", RGB{170.0 / 255, 187.0 / 255, 204.0 / 255}},
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if diff := cmp.Diff(c.want, got, opt); diff != "" {
			t.Errorf("%q: color differs (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "red", "#12345", "#gg0000", "ff0000"} {
		_, err := ParseColor(in)
		if err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestRGBA(t *testing.T) {
	got := RGB{1, 0, 0}.RGBA()
	want := color.RGBA{R: 255, A: 255}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
