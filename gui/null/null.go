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

// Package null is a GUI backend with no output and no input. It is used for
// performance measurement and for running with only the debugger output.
package null

import (
	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/userinput"
)

// GUI implements the gui.GUI interface.
type GUI struct {
	userinput.Null

	width  int
	height int
	title  string

	// the number of refreshes and the number of refreshes where a pixel
	// changed
	refreshes int
	changes   int
}

// NewGUI is the preferred method of initialisation for the GUI type.
func NewGUI() *GUI {
	return &GUI{}
}

// SetResolution implements the framebuffer.Renderer interface.
func (g *GUI) SetResolution(width int, height int) {
	g.width = width
	g.height = height
}

// SetPixel implements the framebuffer.Renderer interface.
func (g *GUI) SetPixel(x int, y int, colour uint8) {
}

// RefreshDisplay implements the framebuffer.Renderer interface.
func (g *GUI) RefreshDisplay(changed bool) {
	g.refreshes++
	if changed {
		g.changes++
	}
}

// SetTitle implements the framebuffer.Renderer interface.
func (g *GUI) SetTitle(title string) {
	g.title = title
}

// Audio implements the gui.GUI interface.
func (g *GUI) Audio() cpu.Audio {
	return audio.Null{}
}

// Destroy implements the gui.GUI interface.
func (g *GUI) Destroy() error {
	return nil
}

// Resolution returns the most recent resolution.
func (g *GUI) Resolution() (int, int) {
	return g.width, g.height
}

// Title returns the most recent title.
func (g *GUI) Title() string {
	return g.title
}

// Refreshes returns the number of display refreshes and the number of those
// refreshes where at least one pixel changed.
func (g *GUI) Refreshes() (int, int) {
	return g.refreshes, g.changes
}
