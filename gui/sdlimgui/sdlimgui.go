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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/gui"
	sdlgui "github.com/superchocchip/superchocchip/gui/sdl"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/logger"
	"github.com/superchocchip/superchocchip/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// ImGuiError is the pattern used for errors raised by the ImGui backend.
const ImGuiError = "sdlimgui: %v"

// Config is used to create a new ImGui GUI.
type Config struct {
	// width of the window
	Scale int

	Palette gui.Palette
	Keymap  userinput.Keymap

	// create an audio device
	Audio bool

	// called when the screenshot key is pressed. can be nil
	Screenshot func()

	// returns a description of the CPU registers. the registers window is
	// not available if Registers is nil
	Registers func() string
}

// GUI implements the gui.GUI interface.
type GUI struct {
	*userinput.Keypad

	context *imgui.Context
	plt     *platform
	rnd     *glsl
	scr     *screen
	aud     *sdlgui.Audio

	keymap     userinput.Keymap
	screenshot func()
	registers  func() string

	showRegisters bool
}

// NewGUI is the preferred method of initialisation for the GUI type.
func NewGUI(cfg Config) (*GUI, error) {
	g := &GUI{
		Keypad:        userinput.NewKeypad(nil),
		keymap:        cfg.Keymap,
		screenshot:    cfg.Screenshot,
		registers:     cfg.Registers,
		showRegisters: cfg.Registers != nil,
	}

	flags := uint32(sdl.INIT_VIDEO)
	if cfg.Audio {
		flags |= sdl.INIT_AUDIO
	}

	err := sdl.Init(flags)
	if err != nil {
		return nil, curated.Errorf(ImGuiError, err)
	}

	g.context = imgui.CreateContext(nil)

	// window layout is not saved between sessions
	imgui.CurrentIO().SetIniFilename("")

	// the window is wider than the framebuffer window to make room for the
	// registers window
	scale := int32(cfg.Scale)
	g.plt, err = newPlatform(scale+scale/2, scale*3/4)
	if err != nil {
		g.context.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(ImGuiError, err)
	}

	g.rnd, err = newGlsl()
	if err != nil {
		_ = g.plt.destroy()
		g.context.Destroy()
		sdl.Quit()
		return nil, err
	}

	g.scr = newScreen(cfg.Palette)

	if cfg.Audio {
		g.aud, err = sdlgui.NewAudio()
		if err != nil {
			_ = g.Destroy()
			return nil, curated.Errorf(ImGuiError, err)
		}
	}

	logger.Logf(logger.Allow, "sdlimgui", "window width %d, audio %v", cfg.Scale, cfg.Audio)

	return g, nil
}

// SetResolution implements the framebuffer.Renderer interface.
func (g *GUI) SetResolution(width int, height int) {
	g.scr.setResolution(width, height)
}

// SetPixel implements the framebuffer.Renderer interface.
func (g *GUI) SetPixel(x int, y int, colour uint8) {
	g.scr.setPixel(x, y, colour)
}

// RefreshDisplay implements the framebuffer.Renderer interface. A new frame
// is rendered every time, even if the framebuffer has not changed, because
// the registers window changes on every instruction.
func (g *GUI) RefreshDisplay(changed bool) {
	if changed {
		g.scr.upload()
	}
	g.render()

	if g.aud != nil {
		err := g.aud.Service()
		if err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
	}
}

// SetTitle implements the framebuffer.Renderer interface.
func (g *GUI) SetTitle(title string) {
	g.plt.window.SetTitle(title)
}

// Audio implements the gui.GUI interface.
func (g *GUI) Audio() cpu.Audio {
	if g.aud == nil {
		return audio.Null{}
	}
	return g.aud
}

// Destroy implements the gui.GUI interface.
func (g *GUI) Destroy() error {
	if g.aud != nil {
		g.aud.Close()
		g.aud = nil
	}
	g.scr.destroy()
	g.rnd.destroy()
	err := g.plt.destroy()
	g.context.Destroy()
	sdl.Quit()
	if err != nil {
		return curated.Errorf(ImGuiError, err)
	}
	return nil
}

func (g *GUI) render() {
	g.plt.newFrame()
	imgui.NewFrame()

	g.drawScreen()
	if g.showRegisters {
		g.drawRegisters()
	}

	// Render() only creates the draw data. drawing to the window happens in
	// the glsl type
	imgui.Render()
	g.rnd.preRender()
	g.rnd.render(g.plt.displaySize(), g.plt.framebufferSize())
	g.plt.postRender()
}
