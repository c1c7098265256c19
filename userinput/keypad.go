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

package userinput

import (
	"time"

	"github.com/superchocchip/superchocchip/hardware/clocks"
)

// FakeKeyDownTime is how long a key remains down after a call to Tap().
const FakeKeyDownTime = 200 * time.Millisecond

// Keypad records the state of the sixteen keys and implements the keypress
// latch. It implements every part of the cpu.Inputs interface except
// ProcessMessages(), which is the responsibility of the GUI backend.
//
// Keypad is not safe for concurrent use. GUI backends should only call its
// functions from the goroutine running the emulation.
type Keypad struct {
	clock clocks.Clock

	down [NumKeys]bool

	// the time until which a tapped key is considered to be down
	tapped [NumKeys]time.Duration

	latched uint8
	isLatch bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type. If
// clock is nil then a monotonic clock is used.
func NewKeypad(clock clocks.Clock) *Keypad {
	if clock == nil {
		clock = clocks.NewMonotonic()
	}
	return &Keypad{
		clock: clock,
	}
}

// Press puts the key into the down state.
func (kp *Keypad) Press(key uint8) {
	kp.down[key&0x0f] = true
}

// Release puts the key into the up state. If the key was down then it is
// latched as the most recent keypress.
func (kp *Keypad) Release(key uint8) {
	key &= 0x0f
	if kp.down[key] {
		kp.down[key] = false
		kp.latched = key
		kp.isLatch = true
	}
}

// Tap is used when the host can only report that a key has been typed. The
// key is held down for FakeKeyDownTime and immediately latched.
func (kp *Keypad) Tap(key uint8) {
	key &= 0x0f
	kp.tapped[key] = kp.clock.Now() + FakeKeyDownTime
	kp.latched = key
	kp.isLatch = true
}

// IsKeyDown implements the cpu.Inputs interface.
func (kp *Keypad) IsKeyDown(key uint8) bool {
	key &= 0x0f
	return kp.down[key] || kp.tapped[key] > kp.clock.Now()
}

// SetupKeypress implements the cpu.Inputs interface.
func (kp *Keypad) SetupKeypress() {
	kp.isLatch = false
}

// GetKeypress implements the cpu.Inputs interface.
func (kp *Keypad) GetKeypress() (uint8, bool) {
	return kp.latched, kp.isLatch
}
