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

package arch

import (
	"fmt"
	"strings"
)

// Architecture identifies one member of the CHIP-8 family. The values are
// ordered so that a later architecture is a superset of the earlier ones.
type Architecture int

// List of valid Architecture values.
const (
	CHIP8      Architecture = 0
	CHIP8HiRes Architecture = 5
	SCHIP10    Architecture = 10
	CHIP48     Architecture = 15
	SCHIP11    Architecture = 20
	XOCHIP     Architecture = 30
	XOCHIP16   Architecture = 35
)

// Default is the architecture used when none is specified.
const Default = XOCHIP16

// the command line names of each architecture, in order.
var names = []struct {
	arch Architecture
	name string
}{
	{CHIP8, "chip8"},
	{CHIP8HiRes, "chip8hires"},
	{SCHIP10, "schip1.0"},
	{CHIP48, "chip48"},
	{SCHIP11, "schip1.1"},
	{XOCHIP, "xochip"},
	{XOCHIP16, "xochip16"},
}

// List returns the names of all architectures in order.
func List() []string {
	l := make([]string, 0, len(names))
	for _, n := range names {
		l = append(l, n.name)
	}
	return l
}

// Parse returns the Architecture for the name. Names are case insensitive.
func Parse(name string) (Architecture, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range names {
		if n.name == name {
			return n.arch, nil
		}
	}
	return Default, fmt.Errorf("unknown architecture (%s): valid architectures are %s", name, strings.Join(List(), ", "))
}

func (a Architecture) String() string {
	for _, n := range names {
		if n.arch == a {
			return n.name
		}
	}
	return fmt.Sprintf("unknown architecture (%d)", int(a))
}

// MemorySize is the size of main memory in bytes.
func (a Architecture) MemorySize() int {
	if a >= XOCHIP {
		return 0x10000
	}
	return 0x1000
}

// AddressMask is the mask applied to the index register after every update.
func (a Architecture) AddressMask() uint16 {
	if a >= XOCHIP {
		return 0xffff
	}
	return 0x0fff
}

// StackDepth is the number of return addresses the call stack can hold.
func (a Architecture) StackDepth() int {
	if a >= SCHIP10 {
		return 16
	}
	return 12
}

// Planes is the number of bit-planes in the framebuffer.
func (a Architecture) Planes() int {
	switch {
	case a >= XOCHIP16:
		return 4
	case a >= XOCHIP:
		return 2
	}
	return 1
}

// DefaultClockSpeed is the number of instructions per second. A value of zero
// means the clock is uncapped.
func (a Architecture) DefaultClockSpeed() int {
	if a >= SCHIP10 {
		return 0
	}
	return 1000
}

// DefaultWrap returns true if sprites wrap around the edges of the screen.
func (a Architecture) DefaultWrap() bool {
	return a >= XOCHIP
}

// HasRPL returns true if the architecture has the auxiliary RPL registers.
func (a Architecture) HasRPL() bool {
	return a >= SCHIP10
}

// HasBigFont returns true if the ten line font is available.
func (a Architecture) HasBigFont() bool {
	return a > CHIP8
}

// Colour returns true if the architecture should be displayed with the
// colour palette rather than the monochrome palette.
func (a Architecture) Colour() bool {
	return a >= XOCHIP
}
