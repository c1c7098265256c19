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

package terminal

import (
	"bufio"
	"io"
	"strings"

	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/gui/terminal/ansi"
)

// Geometry returns the size of the terminal in characters. A Screen with a
// nil Geometry does not clip its output.
type Geometry func() (cols int, rows int, err error)

// Screen implements the framebuffer.Renderer interface.
type Screen struct {
	output   *bufio.Writer
	geometry Geometry

	// the number of characters used for each pixel
	scale int
	pixel string

	palette   gui.Palette
	useColour bool

	width  int
	height int
	pixels []uint8

	// pixels that have changed since the last refresh
	pending []int

	title        string
	titleChanged bool

	// the entire screen must be redrawn on the next refresh
	redraw bool

	cols int
	rows int
}

// NewScreen is the preferred method of initialisation for the Screen type. A
// scale of less than one is treated as one.
func NewScreen(output io.Writer, geometry Geometry, scale int, palette gui.Palette, useColour bool) *Screen {
	scale = max(scale, 1)
	return &Screen{
		output:    bufio.NewWriter(output),
		geometry:  geometry,
		scale:     scale,
		pixel:     strings.Repeat(" ", scale),
		palette:   palette,
		useColour: useColour,
	}
}

// SetResolution implements the framebuffer.Renderer interface.
func (scr *Screen) SetResolution(width int, height int) {
	scr.width = width
	scr.height = height
	scr.pixels = make([]uint8, width*height)
	scr.pending = scr.pending[:0]
	scr.redraw = true
}

// SetPixel implements the framebuffer.Renderer interface.
func (scr *Screen) SetPixel(x int, y int, colour uint8) {
	loc := y*scr.width + x
	scr.pixels[loc] = colour
	scr.pending = append(scr.pending, loc)
}

// SetTitle implements the framebuffer.Renderer interface.
func (scr *Screen) SetTitle(title string) {
	scr.title = title
	scr.titleChanged = true
}

// RefreshDisplay implements the framebuffer.Renderer interface.
func (scr *Screen) RefreshDisplay(changed bool) {
	if scr.geometry != nil {
		cols, rows, err := scr.geometry()
		if err == nil && (cols != scr.cols || rows != scr.rows) {
			scr.cols = cols
			scr.rows = rows
			scr.redraw = true
		}
	}

	if !scr.redraw && !scr.titleChanged && len(scr.pending) == 0 {
		return
	}

	if scr.redraw {
		scr.output.WriteString(ansi.NormalPen)
		scr.output.WriteString(ansi.ClearScreen)
		scr.drawTitle()
		for loc := range scr.pixels {
			scr.drawPixel(loc)
		}
	} else {
		if scr.titleChanged {
			scr.drawTitle()
		}
		for _, loc := range scr.pending {
			scr.drawPixel(loc)
		}
	}

	scr.output.WriteString(ansi.NormalPen)
	scr.output.Flush()

	scr.pending = scr.pending[:0]
	scr.titleChanged = false
	scr.redraw = false
}

// the title is drawn in inverse video across the width of the screen.
func (scr *Screen) drawTitle() {
	w := scr.width * scr.scale
	if scr.cols > 0 {
		w = min(w, scr.cols)
	}
	if w == 0 {
		return
	}

	t := scr.title
	if len(t) > w {
		t = t[:w]
	}

	scr.output.WriteString(ansi.CursorPosition(1, 1))
	scr.output.WriteString(inversePen)
	scr.output.WriteString(t)
	scr.output.WriteString(strings.Repeat(" ", w-len(t)))
	scr.output.WriteString(ansi.NormalPen)
}

func (scr *Screen) drawPixel(loc int) {
	x := loc % scr.width
	y := loc / scr.width

	// the first row of the terminal is the title
	row := y + 2
	col := x*scr.scale + 1

	if scr.rows > 0 && row > scr.rows {
		return
	}
	if scr.cols > 0 && col+scr.scale-1 > scr.cols {
		return
	}

	c := scr.pixels[loc]

	scr.output.WriteString(ansi.CursorPosition(row, col))
	if scr.useColour {
		p := scr.palette[c&0x0f]
		rgb := uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
		scr.output.WriteString(ansi.TrueColour(rgb, rgb))
	} else if c != 0 {
		scr.output.WriteString(inversePen)
	} else {
		scr.output.WriteString(ansi.NormalPen)
	}
	scr.output.WriteString(scr.pixel)
}

var inversePen string

func init() {
	inversePen, _ = ansi.ColorBuild("", "", "inverse", false, false)
}
