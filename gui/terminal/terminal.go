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

package terminal

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/gui/terminal/ansi"
	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/logger"
	"github.com/superchocchip/superchocchip/userinput"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TerminalError is the pattern used for errors raised by the terminal
// backend.
const TerminalError = "terminal: %v"

// CursorMode controls the visibility of the terminal cursor while the
// emulation is running.
type CursorMode int

// List of valid CursorMode values.
const (
	CursorHidden CursorMode = iota
	CursorVisible
	CursorBlock
)

// Config is used to create a new terminal GUI.
type Config struct {
	Scale     int
	Palette   gui.Palette
	UseColour bool
	Cursor    CursorMode
	Keymap    userinput.Keymap

	// the clock used to time the fake key down. nil means a monotonic clock
	Clock clocks.Clock
}

// GUI implements the gui.GUI interface.
type GUI struct {
	*Screen
	*Keyboard

	bell *Bell

	input  *os.File
	output *os.File

	// the terminal attributes at the time of creation
	canAttr unix.Termios
}

// NewGUI is the preferred method of initialisation for the GUI type. Both
// stdin and stdout must be terminals.
func NewGUI(cfg Config) (*GUI, error) {
	g := &GUI{
		input:  os.Stdin,
		output: os.Stdout,
	}

	if !term.IsTerminal(int(g.input.Fd())) || !term.IsTerminal(int(g.output.Fd())) {
		return nil, curated.Errorf(TerminalError, "stdin and stdout must be a terminal")
	}

	if cfg.Cursor < CursorHidden || cfg.Cursor > CursorBlock {
		return nil, curated.Errorf(TerminalError, fmt.Sprintf("unknown cursor mode (%d)", cfg.Cursor))
	}

	err := termios.Tcgetattr(g.input.Fd(), &g.canAttr)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	// cbreak mode without signals so that Ctrl-C is seen as a character. one
	// character is enough to satisfy a read
	cbreakAttr := g.canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	cbreakAttr.Lflag &^= unix.ISIG
	cbreakAttr.Cc[unix.VMIN] = 1
	cbreakAttr.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(g.input.Fd(), termios.TCSANOW, &cbreakAttr)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	geometry := func() (int, int, error) {
		return term.GetSize(int(g.output.Fd()))
	}

	g.Screen = NewScreen(g.output, geometry, cfg.Scale, cfg.Palette, cfg.UseColour)
	g.Keyboard = NewKeyboard(g.input, cfg.Keymap, cfg.Clock)
	g.bell = NewBell(g.output)

	switch cfg.Cursor {
	case CursorHidden:
		g.output.WriteString(ansi.HideCursor)
	case CursorVisible:
		g.output.WriteString(ansi.ShowCursor)
	case CursorBlock:
		g.output.WriteString(ansi.ShowCursor)
		g.output.WriteString(ansi.BlinkingBlock)
	}

	logger.Logf(logger.Allow, "terminal", "scale %d, colour %v, cursor mode %d", g.Screen.scale, cfg.UseColour, cfg.Cursor)

	return g, nil
}

// Audio implements the gui.GUI interface.
func (g *GUI) Audio() cpu.Audio {
	return g.bell
}

// Destroy implements the gui.GUI interface. The terminal is returned to the
// state it was in when the GUI was created.
func (g *GUI) Destroy() error {
	// move the cursor below the emulated screen so that any output after
	// the emulation ends is not drawn over the screen
	g.output.WriteString(ansi.NormalPen)
	g.output.WriteString(ansi.CursorPosition(g.Screen.height+2, 1))
	g.output.WriteString(ansi.DefaultShape)
	g.output.WriteString(ansi.ShowCursor)
	g.output.WriteString("\n")

	err := termios.Tcsetattr(g.input.Fd(), termios.TCSANOW, &g.canAttr)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}

	return nil
}
