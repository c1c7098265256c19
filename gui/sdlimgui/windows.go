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
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

// the height of the screen window is half the width, plus the title bar
const screenAspect = 0.5

func (g *GUI) drawScreen() {
	displaySize := g.plt.displaySize()
	w := displaySize[0] * 2 / 3

	imgui.SetNextWindowPosV(imgui.Vec2{X: 0, Y: 0}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: w, Y: w*screenAspect + imgui.FrameHeight()}, imgui.ConditionFirstUseEver)

	if imgui.BeginV("Display", nil, imgui.WindowFlagsNoScrollbar) {
		// fit the texture to the window keeping the aspect ratio of the
		// framebuffer
		sz := imgui.ContentRegionAvail()
		if g.scr.width > 0 && g.scr.height > 0 {
			aspect := float32(g.scr.height) / float32(g.scr.width)
			if sz.X*aspect > sz.Y {
				sz.X = sz.Y / aspect
			} else {
				sz.Y = sz.X * aspect
			}
			imgui.Image(imgui.TextureID(g.scr.texture), sz)
		}
	}
	imgui.End()
}

func (g *GUI) drawRegisters() {
	displaySize := g.plt.displaySize()
	x := displaySize[0] * 2 / 3

	imgui.SetNextWindowPosV(imgui.Vec2{X: x, Y: 0}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: displaySize[0] - x, Y: displaySize[1]}, imgui.ConditionFirstUseEver)

	if imgui.BeginV("Registers", &g.showRegisters, imgui.WindowFlagsNone) {
		for _, l := range splitRegisters(g.registers()) {
			imgui.Text(l)
		}
	}
	imgui.End()
}

// splitRegisters puts each labelled field of the register description on a
// line of its own. A label is a word ending with a colon.
func splitRegisters(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		var current []string
		for _, f := range strings.Fields(l) {
			if strings.HasSuffix(f, ":") && len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
				current = current[:0]
			}
			current = append(current, f)
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
	}
	return lines
}
