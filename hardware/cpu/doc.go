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

// Package cpu emulates the interpreter at the heart of the CHIP-8 family of
// virtual machines. Every member of the family shares the same instruction
// encoding but the behaviour of some instructions differs from one
// architecture to the next. These differences are called quirks and are
// resolved once, when the CPU is created.
//
// The CPU needs a number of collaborators. Main memory, the call stack and
// the framebuffer are created by the caller and are owned by the CPU from
// then on. The Inputs, Audio and Tracer interfaces connect the CPU to the
// host.
//
//	mc := cpu.NewCPU(cpu.Config{Arch: arch.SCHIP11}, mem, stk, fb, inputs, audio, dbg, clocks.NewMonotonic())
//	err := mc.Run(0x200)
//
// Run() loops until the Inputs implementation reports that the user has asked
// to quit, in which case it returns nil, or until an error occurs. All
// errors are fatal. Step() runs a single cycle of the same loop and is useful
// for testing.
//
// Pacing is done by busy-waiting on a clocks.Clock. The display is refreshed
// and input is polled at 60Hz regardless of the speed of the CPU. The delay
// and sound timers are not decremented. Instead, a deadline is recorded when
// the timer is set and the value of the timer is recalculated from the
// deadline on every cycle.
package cpu
