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
// Package sdlimgui is a GUI backend using SDL, OpenGL and Dear ImGui. The
// framebuffer is drawn in an ImGui window alongside a window showing the
// state of the CPU registers. The registers window is only available if a
// state function has been supplied in the Config.
//
// Keyboard handling is the same as for the plain SDL backend. In addition F1
// toggles the registers window.
//
// The GUI must be created and used on the main thread.
package sdlimgui
