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

package memory_test

import (
	"testing"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/hardware/memory"
	"github.com/superchocchip/superchocchip/test"
)

func TestResize(t *testing.T) {
	mem := memory.NewMemory(16)
	test.ExpectEquality(t, mem.Size(), 16)
	test.ExpectEquality(t, mem.Top(), 15)

	test.ExpectSuccess(t, mem.Write(15, 0xff))
	mem.Resize(32)
	test.ExpectEquality(t, mem.Size(), 32)
	test.ExpectEquality(t, mem.Top(), 31)

	// resized memory is zeroed
	test.ExpectEquality(t, mem.Read(15), 0x00)
}

func TestWriteBounds(t *testing.T) {
	mem := memory.NewMemory(0x1000)

	test.ExpectSuccess(t, mem.Write(0xfff, 0x12))
	test.ExpectEquality(t, mem.Read(0xfff), 0x12)

	err := mem.Write(0x1000, 0x34)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryFault))

	err = mem.Write(-1, 0x34)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryFault))
}

func TestBlocks(t *testing.T) {
	mem := memory.NewMemory(8)

	test.ExpectSuccess(t, mem.WriteBlock(2, []uint8{1, 2, 3}))
	test.ExpectEquality(t, string(mem.ReadBlock(0, 8)), string([]uint8{0, 0, 1, 2, 3, 0, 0, 0}))

	// a block that runs off the end of memory is not written at all
	err := mem.WriteBlock(6, []uint8{9, 9, 9})
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryFault))
	test.ExpectEquality(t, mem.Read(6), 0)
	test.ExpectEquality(t, mem.Read(7), 0)

	// read blocks are clipped to the end of memory
	test.ExpectEquality(t, len(mem.ReadBlock(6, 16)), 2)

	test.ExpectSuccess(t, mem.ZeroBlock(3, 2))
	test.ExpectEquality(t, string(mem.ReadBlock(0, 8)), string([]uint8{0, 0, 1, 0, 0, 0, 0, 0}))

	err = mem.ZeroBlock(4, 5)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryFault))

	test.ExpectSuccess(t, mem.Clear())
	test.ExpectEquality(t, mem.Read(2), 0)
}

func TestMoveMem(t *testing.T) {
	mem := memory.NewMemory(6)
	test.DemandSuccess(t, mem.WriteBlock(0, []uint8{1, 2, 3, 4, 5, 6}))

	// moving towards higher addresses leaves the vacated bytes unchanged
	mem.MoveMem(2)
	test.ExpectEquality(t, string(mem.ReadBlock(0, 6)), string([]uint8{1, 2, 1, 2, 3, 4}))

	mem.MoveMem(-3)
	test.ExpectEquality(t, string(mem.ReadBlock(0, 6)), string([]uint8{2, 3, 4, 2, 3, 4}))

	// no movement
	mem.MoveMem(0)
	mem.MoveMem(6)
	mem.MoveMem(-100)
	test.ExpectEquality(t, string(mem.ReadBlock(0, 6)), string([]uint8{2, 3, 4, 2, 3, 4}))
}

func TestString(t *testing.T) {
	mem := memory.NewMemory(0x40)
	test.ExpectEquality(t, mem.String(), "")

	test.DemandSuccess(t, mem.Write(0x21, 0xab))
	test.ExpectEquality(t, mem.String(), "0020 | 00 ab 00 00 00 00 00 00 00 00 00 00 00 00 00 00")
}
