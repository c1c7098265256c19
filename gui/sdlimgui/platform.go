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
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/superchocchip/superchocchip/logger"
	"github.com/superchocchip/superchocchip/version"
	"github.com/veandco/go-sdl2/sdl"
)

// platform is the SDL window and OpenGL context.
type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext

	// time of the previous call to newFrame()
	lastFrame time.Time
}

// swap interval value for SDL.GLSetSwapInterval() that does not wait for
// the vertical retrace
const syncImmediateUpdate = 0

// newPlatform creates the window with an OpenGL 3.2 core context. SDL must
// have been initialised with INIT_VIDEO.
func newPlatform(width int32, height int32) (*platform, error) {
	err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, err
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, err
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, err
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, err
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdlimgui", "sdl version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{
		lastFrame: time.Now(),
	}

	plt.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, err
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, err
	}

	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, err
	}

	// the emulation is paced by its own clock. waiting for the vertical
	// retrace would slow it down on displays slower than 60Hz
	err = sdl.GLSetSwapInterval(syncImmediateUpdate)
	if err != nil {
		logger.Logf(logger.Allow, "sdlimgui", "GLSetSwapInterval(%d): %v", syncImmediateUpdate, err)
	}

	return plt, nil
}

func (plt *platform) destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		err := plt.window.Destroy()
		plt.window = nil
		if err != nil {
			return err
		}
	}
	return nil
}

// displaySize returns the dimensions of the window.
func (plt *platform) displaySize() [2]float32 {
	w, h := plt.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// framebufferSize returns the dimensions of the drawable area in pixels.
func (plt *platform) framebufferSize() [2]float32 {
	w, h := plt.window.GLGetDrawableSize()
	return [2]float32{float32(w), float32(h)}
}

// newFrame forwards the window size, mouse state and frame time to ImGui.
func (plt *platform) newFrame() {
	io := imgui.CurrentIO()

	displaySize := plt.displaySize()
	io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	now := time.Now()
	io.SetDeltaTime(float32(now.Sub(plt.lastFrame).Seconds()))
	plt.lastFrame = now

	x, y, state := sdl.GetMouseState()
	io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		io.SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}
}

func (plt *platform) postRender() {
	plt.window.GLSwap()
}
