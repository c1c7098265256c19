// This file is part of SuperChocChip.
//
// SuperChocChip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SuperChocChip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SuperChocChip.  If not, see <https://www.gnu.org/licenses/>.

package gui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/superchocchip/superchocchip/curated"
)

// PaletteError is the pattern used for errors raised by ParsePalette().
const PaletteError = "palette: %v"

// Palette maps the colour index of a pixel to an RGB colour. The colour
// index of a pixel is formed from the bits of every plane, so a single plane
// machine only uses the first two entries.
type Palette [16]color.RGBA

func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// colours for the XO-CHIP architectures. plane one is green, plane two is red
// and both planes together are white
var colourPalette = Palette{
	rgb(0x202020), rgb(0x00e080), rgb(0xe04040), rgb(0xe0e0e0),
	rgb(0x4060e0), rgb(0x40c0e0), rgb(0xc040e0), rgb(0xe0c040),
	rgb(0x606060), rgb(0x008040), rgb(0x802020), rgb(0xa0a0a0),
	rgb(0x203080), rgb(0x206080), rgb(0x602080), rgb(0x806020),
}

// DefaultPalette returns the palette for the machine. Monochrome machines
// draw every set pixel in the same colour.
func DefaultPalette(useColour bool) Palette {
	if useColour {
		return colourPalette
	}
	var p Palette
	p[0] = colourPalette[0]
	for i := 1; i < len(p); i++ {
		p[i] = colourPalette[3]
	}
	return p
}

// ParsePalette replaces entries in the base palette with the colours in the
// string. The string is a comma separated list of up to sixteen RRGGBB hex
// values. The first value replaces the background colour. An empty string
// returns the base palette unchanged.
func ParsePalette(s string, base Palette) (Palette, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return base, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) > len(base) {
		return base, curated.Errorf(PaletteError, fmt.Sprintf("%d colours defined, no more than %d are allowed", len(parts), len(base)))
	}

	p := base
	for i, c := range parts {
		c = strings.TrimPrefix(strings.TrimSpace(c), "#")
		if len(c) != 6 {
			return base, curated.Errorf(PaletteError, fmt.Sprintf("colour %d is not in RRGGBB form (%s)", i, c))
		}
		v, err := strconv.ParseUint(c, 16, 32)
		if err != nil {
			return base, curated.Errorf(PaletteError, fmt.Sprintf("colour %d is not a hex value (%s)", i, c))
		}
		p[i] = rgb(uint32(v))
	}

	return p, nil
}

// String returns the palette in the form accepted by ParsePalette().
func (p Palette) String() string {
	s := make([]string, len(p))
	for i, c := range p {
		s[i] = fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return strings.Join(s, ",")
}
