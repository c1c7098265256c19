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

// Package gui defines the GUI interface and the facilities shared by the GUI
// backends. The backends are in the sub-packages:
//
//	sdl		a window drawn with SDL, with SDL audio
//	sdlimgui	SDL and OpenGL with Dear ImGui windows for the display and registers
//	ebiten		a window drawn with ebiten, with audio from the oto player
//	terminal	ANSI graphics in a terminal, with the terminal bell for audio
//	null		no output and no input
//
// Graphical backends draw the colour index of each pixel with a Palette.
package gui
