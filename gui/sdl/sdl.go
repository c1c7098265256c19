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

// Package sdl is a GUI backend using the SDL library. The framebuffer is
// drawn to a streaming texture which is stretched to fill the window.
//
// Keyboard events are translated with the keymap. SDL key codes for letters
// and digits are the ASCII values of the lower case character, which is what
// the default keymap expects. The Escape key and closing the window both end
// the emulation. F12 takes a screenshot if a screenshot function has been
// supplied.
//
// Audio is played through a queued SDL audio device.
package sdl

import (
	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/logger"
	"github.com/superchocchip/superchocchip/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern used for errors raised by the SDL backend.
const SDLError = "sdl: %v"

// Config is used to create a new SDL GUI.
type Config struct {
	// width of the window. the height is always half the width
	Scale int

	Palette gui.Palette
	Keymap  userinput.Keymap

	// create an audio device. if Audio is false then the Audio() function
	// returns null audio
	Audio bool

	// called when the screenshot key is pressed. can be nil
	Screenshot func()
}

// GUI implements the gui.GUI interface.
type GUI struct {
	*userinput.Keypad

	scr *screen
	aud *Audio

	keymap     userinput.Keymap
	screenshot func()
}

// NewGUI is the preferred method of initialisation for the GUI type.
func NewGUI(cfg Config) (*GUI, error) {
	g := &GUI{
		Keypad:     userinput.NewKeypad(nil),
		keymap:     cfg.Keymap,
		screenshot: cfg.Screenshot,
	}

	flags := uint32(sdl.INIT_VIDEO)
	if cfg.Audio {
		flags |= sdl.INIT_AUDIO
	}

	err := sdl.Init(flags)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	g.scr, err = newScreen(cfg.Scale, cfg.Palette)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	if cfg.Audio {
		g.aud, err = NewAudio()
		if err != nil {
			_ = g.scr.destroy()
			sdl.Quit()
			return nil, curated.Errorf(SDLError, err)
		}
	}

	logger.Logf(logger.Allow, "sdl", "window width %d, audio %v", cfg.Scale, cfg.Audio)

	return g, nil
}

// SetResolution implements the framebuffer.Renderer interface.
func (g *GUI) SetResolution(width int, height int) {
	err := g.scr.setResolution(width, height)
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}

// SetPixel implements the framebuffer.Renderer interface.
func (g *GUI) SetPixel(x int, y int, colour uint8) {
	g.scr.setPixel(x, y, colour)
}

// RefreshDisplay implements the framebuffer.Renderer interface. The audio
// queue is serviced at the same time.
func (g *GUI) RefreshDisplay(changed bool) {
	if changed {
		err := g.scr.present()
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
	}
	if g.aud != nil {
		err := g.aud.Service()
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
	}
}

// SetTitle implements the framebuffer.Renderer interface.
func (g *GUI) SetTitle(title string) {
	g.scr.window.SetTitle(title)
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
	}
	err := g.scr.destroy()
	sdl.Quit()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}
