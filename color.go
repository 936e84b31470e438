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
	"image/color"
)

// RGB is a device RGB color with components in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// ParseColor parses a CSS-style hex color string of the form "#rrggbb"
// or "#rgb".
func ParseColor(s string) (RGB, error) {
	var r, g, b uint8
	switch len(s) {
	case 7:
		_, err := fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &b)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q", s)
		}
	case 4:
		_, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q", s)
		}
		r *= 17
		g *= 17
		b *= 17
	default:
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	return RGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}

// RGBA returns the color converted for use with the image/color
// package.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}
