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

// Package framebuffer implements the video memory of the emulated machine.
//
// Pixels are drawn by inverting them with XORPixel(), which reports whether
// the pixel was set before it was inverted. The CPU uses this to detect
// sprite collisions. The framebuffer has no notion of a sprite.
//
// Changes to the framebuffer are not sent to the Renderer immediately. The
// colour of each changed pixel is recorded and sent on the next call to
// RefreshDisplay(), which the CPU calls at 60Hz. A pixel is only sent if its
// colour differs from the colour last sent for that location.
//
// XO-CHIP machines have more than one plane. SwitchPlanes() selects which
// planes are affected by drawing, scrolling and clearing. The colour of a
// pixel is the sum of 2^n for every plane n in which the pixel is set.
package framebuffer
