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

package sdl

import (
	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/version"

	"github.com/veandco/go-sdl2/sdl"
)

// the texture is ABGR8888. four bytes per pixel
const scrDepth = 4

type screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	palette gui.Palette

	width  int32
	height int32
	pixels []byte
}

func newScreen(scale int, palette gui.Palette) (*screen, error) {
	var err error

	scr := &screen{
		palette: palette,
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(scale), int32(scale/2), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = scr.window.Destroy()
		return nil, err
	}

	// nearest neighbour scaling keeps the pixels sharp
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	return scr, nil
}

func (scr *screen) destroy() error {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	_ = scr.renderer.Destroy()
	return scr.window.Destroy()
}

// setResolution creates a new texture of the correct size. the texture is
// filled with the background colour.
func (scr *screen) setResolution(width int, height int) error {
	var err error

	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	scr.width = int32(width)
	scr.height = int32(height)
	scr.pixels = make([]byte, width*height*scrDepth)

	if width == 0 || height == 0 {
		return nil
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), scr.width, scr.height)
	if err != nil {
		return err
	}

	for i := 0; i < len(scr.pixels)/scrDepth; i++ {
		scr.fill(i, 0)
	}

	return scr.present()
}

func (scr *screen) fill(loc int, colour uint8) {
	c := scr.palette[colour&0x0f]
	i := loc * scrDepth
	scr.pixels[i] = c.R
	scr.pixels[i+1] = c.G
	scr.pixels[i+2] = c.B
	scr.pixels[i+3] = 0xff
}

func (scr *screen) setPixel(x int, y int, colour uint8) {
	scr.fill(y*int(scr.width)+x, colour)
}

// present copies the pixels to the texture and the texture to the window.
func (scr *screen) present() error {
	if scr.texture == nil {
		return nil
	}

	err := scr.texture.Update(nil, scr.pixels, int(scr.width*scrDepth))
	if err != nil {
		return err
	}

	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	// a nil destination stretches the texture over the entire window
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
