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

package gui

import (
	"fmt"
	"strings"

	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/hardware/framebuffer"
)

// GUI defines the operations required of a user interface. A GUI displays
// the framebuffer and provides the inputs to the CPU. Most GUIs also have a
// way of outputting audio.
type GUI interface {
	framebuffer.Renderer
	cpu.Inputs

	// Audio returns the preferred audio output for the GUI. The returned
	// value will never be nil but it may be null.
	Audio() cpu.Audio

	// Destroy the GUI and restore the state of the host.
	Destroy() error
}

// MainThread is implemented by GUIs that must own the main thread of the
// program. Run() should be called from the main goroutine. The emulation
// function is run in a new goroutine and Run() returns the error from the
// emulation once it has finished.
type MainThread interface {
	Run(emulation func() error) error
}

// UnsupportedBackend is the pattern used for errors raised when a backend
// is requested that is not available.
const UnsupportedBackend = "unsupported gui backend: %v"

// List of backend names.
const (
	BackendSDL      = "sdl"
	BackendImGui    = "imgui"
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
	BackendNull     = "null"
)

// DefaultBackend is used when no backend has been specified.
const DefaultBackend = BackendSDL

// Backends is the list of all backend names.
var Backends = []string{BackendSDL, BackendImGui, BackendEbiten, BackendTerminal, BackendNull}

// ValidateBackend returns the normalised name of the backend or an error if
// the backend does not exist.
func ValidateBackend(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, b := range Backends {
		if n == b {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown backend (%s): valid backends are %s", name, strings.Join(Backends, ", "))
}

// DefaultScale returns the default scale value for the backend. The scale of
// the graphical backends is the width of the window. The scale of the
// terminal backend is the number of characters used for each pixel.
func DefaultScale(backend string) int {
	if backend == BackendTerminal {
		return 2
	}
	return 512
}
