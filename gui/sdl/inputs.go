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
	"github.com/veandco/go-sdl2/sdl"
)

// ProcessMessages implements the cpu.Inputs interface.
func (g *GUI) ProcessMessages() bool {
	var quit bool

	// all pending events are processed even if a quit event has been seen
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue // for loop
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				if k, ok := g.keymap.Lookup(int(ev.Keysym.Sym)); ok {
					g.Press(k)
				}

			case sdl.KEYUP:
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					quit = true
				case sdl.K_F12:
					if g.screenshot != nil {
						g.screenshot()
					}
				default:
					if k, ok := g.keymap.Lookup(int(ev.Keysym.Sym)); ok {
						g.Release(k)
					}
				}
			}
		}
	}

	return quit
}
