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
	"io"
	"sync/atomic"

	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/userinput"
)

// characters that end the emulation
const (
	charCtrlC  = 3
	charEscape = 27
)

// the number of keypresses that can be waiting for ProcessMessages(). further
// keypresses are dropped
const keyQueueLength = 16

// Keyboard implements the cpu.Inputs interface. Characters are read from the
// input in a separate goroutine.
type Keyboard struct {
	*userinput.Keypad

	keymap userinput.Keymap
	keys   chan uint8

	// set when a quit character is typed
	quit atomic.Bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. Reading of the input starts immediately and stops when the input
// returns an error.
func NewKeyboard(input io.Reader, keymap userinput.Keymap, clock clocks.Clock) *Keyboard {
	kb := &Keyboard{
		Keypad: userinput.NewKeypad(clock),
		keymap: keymap,
		keys:   make(chan uint8, keyQueueLength),
	}
	go kb.read(input)
	return kb
}

func (kb *Keyboard) read(input io.Reader) {
	b := make([]byte, 1)
	for {
		n, err := input.Read(b)
		if n > 0 {
			kb.handle(b[0])
		}
		if err != nil {
			return
		}
	}
}

// handle a single character. quit characters never go through the keys
// channel and keypresses are dropped if the channel is full.
func (kb *Keyboard) handle(c byte) {
	if c == charEscape || c == charCtrlC {
		kb.quit.Store(true)
		return
	}

	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}

	if k, ok := kb.keymap.Lookup(int(c)); ok {
		select {
		case kb.keys <- k:
		default:
		}
	}
}

// ProcessMessages implements the cpu.Inputs interface.
func (kb *Keyboard) ProcessMessages() bool {
	if kb.quit.Load() {
		return true
	}
	for {
		select {
		case k := <-kb.keys:
			kb.Tap(k)
		default:
			return false
		}
	}
}
