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

// Package clocks provides the time source for the emulation. The CPU samples
// the clock once per instruction and uses it to pace instructions, to
// schedule the 60Hz display refresh and to decay the delay and sound timers.
//
// The Monotonic clock is used for normal emulation. The Fake clock only
// advances when told to and is used to make tests deterministic.
package clocks

import (
	"sync/atomic"
	"time"
)

// Clock returns the time elapsed since an arbitrary epoch. Successive calls
// must never return a smaller value.
type Clock interface {
	Now() time.Duration
}

// Monotonic is a Clock that uses the monotonic wall clock of the host.
type Monotonic struct {
	epoch time.Time
}

// NewMonotonic is the preferred method of initialisation for the Monotonic
// type. The epoch of the clock is the time of creation.
func NewMonotonic() *Monotonic {
	return &Monotonic{epoch: time.Now()}
}

// Now implements the Clock interface.
func (clk *Monotonic) Now() time.Duration {
	return time.Since(clk.epoch)
}

// Fake is a Clock that only advances when Advance() or Set() is called. It is
// safe to advance the clock from a different goroutine to the one calling
// Now().
type Fake struct {
	now atomic.Int64
}

// Now implements the Clock interface.
func (clk *Fake) Now() time.Duration {
	return time.Duration(clk.now.Load())
}

// Advance the clock by the duration.
func (clk *Fake) Advance(d time.Duration) {
	clk.now.Add(int64(d))
}

// Set the clock to the specified time. Setting the clock to an earlier time
// than it is currently is not allowed and is ignored.
func (clk *Fake) Set(t time.Duration) {
	for {
		c := clk.now.Load()
		if int64(t) <= c || clk.now.CompareAndSwap(c, int64(t)) {
			return
		}
	}
}

// Stepping is a Fake clock that advances by a fixed amount every time Now()
// is called. Busy-wait loops that poll the clock always make progress with a
// Stepping clock, which makes it suitable for running the CPU loop in tests.
type Stepping struct {
	Fake
	Step time.Duration
}

// Now implements the Clock interface.
func (clk *Stepping) Now() time.Duration {
	return time.Duration(clk.now.Add(int64(clk.Step)))
}
