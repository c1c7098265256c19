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

package gui_test

import (
	"image/color"
	"testing"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/test"
)

func TestDefaultPalette(t *testing.T) {
	p := gui.DefaultPalette(true)
	test.ExpectEquality(t, p[0], color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
	test.ExpectEquality(t, p[1], color.RGBA{R: 0x00, G: 0xe0, B: 0x80, A: 0xff})
	test.ExpectEquality(t, p[2], color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff})
	test.ExpectEquality(t, p[3], color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff})

	m := gui.DefaultPalette(false)
	test.ExpectEquality(t, m[0], p[0])
	test.ExpectEquality(t, m[1], p[3])
	test.ExpectEquality(t, m[15], p[3])
}

func TestParsePalette(t *testing.T) {
	base := gui.DefaultPalette(true)

	p, err := gui.ParsePalette("", base)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, base)

	p, err = gui.ParsePalette("000000, #FF8000", base)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p[0], color.RGBA{A: 0xff})
	test.ExpectEquality(t, p[1], color.RGBA{R: 0xff, G: 0x80, A: 0xff})
	test.ExpectEquality(t, p[2], base[2])

	// round trip through the string form
	q, err := gui.ParsePalette(p.String(), base)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, p)

	_, err = gui.ParsePalette("12345", base)
	test.ExpectSuccess(t, curated.Is(err, gui.PaletteError))
	_, err = gui.ParsePalette("12345g", base)
	test.ExpectSuccess(t, curated.Is(err, gui.PaletteError))
	_, err = gui.ParsePalette("0,1,2,3,4,5,6,7,8,9,a,b,c,d,e,f,0", base)
	test.ExpectSuccess(t, curated.Is(err, gui.PaletteError))
}

func TestValidateBackend(t *testing.T) {
	b, err := gui.ValidateBackend(" SDL ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, gui.BackendSDL)

	b, err = gui.ValidateBackend("imgui")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, gui.BackendImGui)

	_, err = gui.ValidateBackend("pygame")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, gui.DefaultScale(gui.BackendTerminal), 2)
	test.ExpectEquality(t, gui.DefaultScale(gui.BackendEbiten), 512)
}
