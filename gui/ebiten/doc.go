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

// Package ebiten is a GUI backend using the Ebitengine game library.
//
// Ebitengine must run on the main thread so the GUI implements the
// gui.MainThread interface. The emulation runs in its own goroutine and
// communicates with the Ebitengine loop through a double buffered image and
// a channel of key events.
//
// Audio is played through the otoplayer package.
package ebiten
