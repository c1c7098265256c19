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
package ebiten

import (
	"testing"

	"github.com/superchocchip/superchocchip/test"
	"github.com/superchocchip/superchocchip/userinput"
)

func newTestGUI() *GUI {
	return &GUI{
		Keypad: userinput.NewKeypad(nil),
		events: make(chan event, eventQueue),
	}
}

func TestEvents(t *testing.T) {
	g := newTestGUI()

	var screenshots int
	g.screenshot = func() {
		screenshots++
	}

	g.sendEvent(event{typ: eventPress, key: 0x5})
	g.sendEvent(event{typ: eventScreenshot})
	test.ExpectFailure(t, g.ProcessMessages())
	test.ExpectSuccess(t, g.IsKeyDown(0x5))
	test.ExpectEquality(t, screenshots, 1)

	g.sendEvent(event{typ: eventRelease, key: 0x5})
	test.ExpectFailure(t, g.ProcessMessages())
	test.ExpectFailure(t, g.IsKeyDown(0x5))
}

func TestQuitWithFullQueue(t *testing.T) {
	g := newTestGUI()

	// the extra event is dropped
	for range eventQueue + 1 {
		g.sendEvent(event{typ: eventPress, key: 0x1})
	}
	test.ExpectEquality(t, len(g.events), eventQueue)

	g.requestQuit()
	test.ExpectSuccess(t, g.ProcessMessages())
	test.ExpectSuccess(t, g.ProcessMessages())
}
