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

package memory

import (
	"fmt"
	"strings"

	"github.com/superchocchip/superchocchip/curated"
)

// MemoryFault is the pattern used for errors raised by the Memory type.
const MemoryFault = "memory fault: %s"

// Memory is a flat, byte addressable store. It is used for the main memory
// of the emulated machine and for each plane of video memory.
type Memory struct {
	data []uint8

	// the highest writable address. always len(data)-1
	top int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(size int) *Memory {
	mem := &Memory{}
	mem.Resize(size)
	return mem
}

// Resize reallocates memory to the number of bytes specified. The new memory
// is zeroed.
func (mem *Memory) Resize(size int) {
	mem.data = make([]uint8, size)
	mem.top = size - 1
}

// Size returns the number of bytes in memory.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// Top returns the highest writable address.
func (mem *Memory) Top() int {
	return mem.top
}

func (mem *Memory) checkBounds(addr int, size int) error {
	if addr < 0 || addr+size-1 > mem.top {
		if size == 1 {
			return curated.Errorf(MemoryFault, fmt.Sprintf("write to 0x%04x is beyond top of memory (0x%04x)", addr, mem.top))
		}
		return curated.Errorf(MemoryFault, fmt.Sprintf("block of %d bytes at 0x%04x is beyond top of memory (0x%04x)", size, addr, mem.top))
	}
	return nil
}

// Read a single byte. Reads are not bounds checked.
func (mem *Memory) Read(addr int) uint8 {
	return mem.data[addr]
}

// ReadBlock returns size bytes starting at address. The block is clipped to
// the end of memory and may be shorter than requested. The returned slice
// refers to the underlying memory and should not be kept.
func (mem *Memory) ReadBlock(addr int, size int) []uint8 {
	end := min(addr+size, len(mem.data))
	return mem.data[addr:end]
}

// Write a single byte.
func (mem *Memory) Write(addr int, data uint8) error {
	if err := mem.checkBounds(addr, 1); err != nil {
		return err
	}
	mem.data[addr] = data
	return nil
}

// WriteBlock writes the data starting at address. Either all of the data is
// written or none of it is.
func (mem *Memory) WriteBlock(addr int, data []uint8) error {
	if len(data) == 0 {
		return nil
	}
	if err := mem.checkBounds(addr, len(data)); err != nil {
		return err
	}
	copy(mem.data[addr:], data)
	return nil
}

// MoveMem shifts the entire contents of memory by offset bytes. A positive
// offset moves data towards higher addresses. Data moved beyond either end
// of memory is lost and the vacated bytes are left unchanged.
//
// An offset larger than the size of memory does nothing.
func (mem *Memory) MoveMem(offset int) {
	switch {
	case offset == 0:
	case offset >= len(mem.data) || -offset >= len(mem.data):
	case offset < 0:
		copy(mem.data, mem.data[-offset:])
	default:
		copy(mem.data[offset:], mem.data)
	}
}

// ZeroBlock sets size bytes starting at offset to zero.
func (mem *Memory) ZeroBlock(offset int, size int) error {
	if size <= 0 {
		return nil
	}
	if err := mem.checkBounds(offset, size); err != nil {
		return err
	}
	clear(mem.data[offset : offset+size])
	return nil
}

// Clear sets all of memory to zero.
func (mem *Memory) Clear() error {
	return mem.ZeroBlock(0, len(mem.data))
}

// String returns a hex dump of memory. Lines that contain only zero bytes are
// omitted.
func (mem *Memory) String() string {
	s := strings.Builder{}
	for origin := 0; origin < len(mem.data); origin += 16 {
		row := mem.data[origin:min(origin+16, len(mem.data))]

		var used bool
		for _, d := range row {
			if d != 0 {
				used = true
				break // for loop
			}
		}
		if !used {
			continue
		}

		s.WriteString(fmt.Sprintf("%04x |", origin))
		for _, d := range row {
			s.WriteString(fmt.Sprintf(" %02x", d))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
