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
package sdlimgui

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/superchocchip/superchocchip/gui"
)

// screen is the OpenGL texture showing the framebuffer.
type screen struct {
	texture uint32
	palette gui.Palette

	width  int32
	height int32

	// RGBA, four bytes per pixel
	pixels []uint8

	// the texture must be recreated at the new size
	resized bool
}

func newScreen(palette gui.Palette) *screen {
	scr := &screen{
		palette: palette,
	}

	gl.GenTextures(1, &scr.texture)
	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return scr
}

func (scr *screen) destroy() {
	if scr.texture != 0 {
		gl.DeleteTextures(1, &scr.texture)
		scr.texture = 0
	}
}

func (scr *screen) setResolution(width int, height int) {
	scr.width = int32(width)
	scr.height = int32(height)
	scr.pixels = make([]uint8, width*height*4)
	scr.resized = true

	c := scr.palette[0]
	for i := 0; i < len(scr.pixels); i += 4 {
		scr.pixels[i] = c.R
		scr.pixels[i+1] = c.G
		scr.pixels[i+2] = c.B
		scr.pixels[i+3] = c.A
	}
}

func (scr *screen) setPixel(x int, y int, colour uint8) {
	i := (y*int(scr.width) + x) * 4
	if i < 0 || i+3 >= len(scr.pixels) {
		return
	}
	c := scr.palette[colour&0x0f]
	scr.pixels[i] = c.R
	scr.pixels[i+1] = c.G
	scr.pixels[i+2] = c.B
	scr.pixels[i+3] = c.A
}

// upload the pixels to the texture.
func (scr *screen) upload() {
	if len(scr.pixels) == 0 {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if scr.resized {
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, scr.width, scr.height, 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.pixels))
		scr.resized = false
		return
	}

	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, scr.width, scr.height,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(scr.pixels))
}
