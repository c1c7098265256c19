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

package terminal_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/gui/terminal"
	"github.com/superchocchip/superchocchip/gui/terminal/ansi"
	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/test"
	"github.com/superchocchip/superchocchip/userinput"
)

func TestScreenMonochrome(t *testing.T) {
	w := &test.CompareWriter{}
	scr := terminal.NewScreen(w, nil, 2, gui.DefaultPalette(false), false)

	scr.SetResolution(4, 2)
	scr.SetTitle("test")
	scr.RefreshDisplay(false)

	// a full redraw after a change of resolution
	test.ExpectSuccess(t, w.Contains(ansi.ClearScreen))
	test.ExpectSuccess(t, w.Contains(ansi.CursorPosition(1, 1)))
	test.ExpectSuccess(t, w.Contains("test    "))
	test.ExpectSuccess(t, w.Contains(ansi.CursorPosition(3, 7)))

	// nothing to do
	w.Clear()
	scr.RefreshDisplay(false)
	test.ExpectEquality(t, w.String(), "")

	// only the changed pixel is drawn
	scr.SetPixel(1, 0, 1)
	scr.RefreshDisplay(true)
	test.ExpectSuccess(t, w.Contains(ansi.CursorPosition(2, 3)))
	test.ExpectFailure(t, w.Contains(ansi.ClearScreen))
	test.ExpectFailure(t, w.Contains(ansi.CursorPosition(2, 1)))
}

func TestScreenClipping(t *testing.T) {
	w := &test.CompareWriter{}
	geometry := func() (int, int, error) {
		return 10, 3, nil
	}
	scr := terminal.NewScreen(w, geometry, 2, gui.DefaultPalette(true), true)

	scr.SetResolution(64, 32)
	scr.SetTitle(strings.Repeat("x", 20))
	scr.RefreshDisplay(false)

	// title is clipped to the width of the terminal
	test.ExpectSuccess(t, w.Contains(strings.Repeat("x", 10)))
	test.ExpectFailure(t, w.Contains(strings.Repeat("x", 11)))

	// five pixels on each of two rows
	test.ExpectSuccess(t, w.Contains(ansi.CursorPosition(3, 9)))
	test.ExpectFailure(t, w.Contains(ansi.CursorPosition(3, 11)))
	test.ExpectFailure(t, w.Contains(ansi.CursorPosition(4, 1)))

	// pixels are drawn in the palette colour
	test.ExpectSuccess(t, w.Contains(ansi.TrueColour(0x202020, 0x202020)))
}

// waitForKey processes messages until the key is down or until a timeout
func waitForKey(kb *terminal.Keyboard, key uint8) (quit bool, down bool) {
	for i := 0; i < 1000; i++ {
		if kb.ProcessMessages() {
			return true, false
		}
		if kb.IsKeyDown(key) {
			return false, true
		}
		time.Sleep(time.Millisecond)
	}
	return false, false
}

func TestKeyboard(t *testing.T) {
	km, err := userinput.ParseKeymap(userinput.DefaultKeymap)
	test.DemandSuccess(t, err)

	clk := &clocks.Fake{}
	r, w := io.Pipe()
	defer w.Close()
	kb := terminal.NewKeyboard(r, km, clk)

	kb.SetupKeypress()

	// upper case characters are treated as lower case. 'W' is key 0x5
	_, err = w.Write([]byte("W"))
	test.DemandSuccess(t, err)
	quit, down := waitForKey(kb, 0x5)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, down)

	k, ok := kb.GetKeypress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x5))

	// the key is released after the fake key down time
	clk.Advance(userinput.FakeKeyDownTime)
	test.ExpectFailure(t, kb.IsKeyDown(0x5))

	// unmapped characters are ignored and escape quits
	_, err = w.Write([]byte("p\033"))
	test.DemandSuccess(t, err)
	quit, _ = waitForKey(kb, 0x0)
	test.ExpectSuccess(t, quit)
}

// scriptedInput returns the data and then io.EOF. the drained channel is
// closed when the data has been read
type scriptedInput struct {
	data    []byte
	drained chan struct{}
}

func (in *scriptedInput) Read(p []byte) (int, error) {
	if len(in.data) == 0 {
		close(in.drained)
		return 0, io.EOF
	}
	n := copy(p, in.data)
	in.data = in.data[n:]
	return n, nil
}

func TestKeyboardQuitWithFullQueue(t *testing.T) {
	km, err := userinput.ParseKeymap(userinput.DefaultKeymap)
	test.DemandSuccess(t, err)

	// more keypresses than can be queued, followed by escape
	in := &scriptedInput{
		data:    []byte(strings.Repeat("w", 32) + "\033"),
		drained: make(chan struct{}),
	}
	kb := terminal.NewKeyboard(in, km, &clocks.Fake{})

	// nothing is consuming the queue but the input is still read to the end
	var drained bool
	select {
	case <-in.drained:
		drained = true
	case <-time.After(time.Second):
	}
	test.DemandSuccess(t, drained)

	// the quit is seen before any of the queued keypresses
	test.ExpectSuccess(t, kb.ProcessMessages())
	test.ExpectFailure(t, kb.IsKeyDown(0x5))
	test.ExpectSuccess(t, kb.ProcessMessages())
}

func TestBell(t *testing.T) {
	w := &test.CompareWriter{}
	bell := terminal.NewBell(w)
	test.ExpectFailure(t, bell.IsNull())

	bell.EnableBuzzer(false)
	test.ExpectEquality(t, w.String(), "")
	bell.EnableBuzzer(true)
	test.ExpectEquality(t, w.String(), "\a")
}
