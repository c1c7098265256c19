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

// Package terminal is a GUI backend that draws the screen in a terminal with
// ANSI escape sequences.
//
// Each pixel is drawn with one or more space characters. The first line of
// the terminal is used for the title. Monochrome machines draw set pixels in
// inverse video and colour machines use 24-bit colour.
//
// A terminal does not report when a key is released, only that a character
// has been typed. Typed characters are translated with the keymap and the
// corresponding key is held down for a short time (see userinput.Tap()). The
// emulation is ended with the Escape key or Ctrl-C.
//
// Audio is the terminal bell, which sounds whenever the buzzer is enabled.
package terminal
