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

package disassembly_test

import (
	"testing"

	"github.com/superchocchip/superchocchip/disassembly"
	"github.com/superchocchip/superchocchip/hardware/arch"
	"github.com/superchocchip/superchocchip/test"
)

func TestMnemonics(t *testing.T) {
	q := arch.XOCHIP16.DefaultQuirks()

	tests := []struct {
		opcode   uint16
		next     uint16
		mnemonic string
	}{
		{0x00e0, 0, "CLS"},
		{0x00ee, 0, "RET"},
		{0x1234, 0, "JP 0x234"},
		{0x2456, 0, "CALL 0x456"},
		{0x3a12, 0, "SE Va, 0x12"},
		{0x5120, 0, "SE V1, V2"},
		{0x6005, 0, "LD V0, 0x05"},
		{0x8124, 0, "ADD V1, V2"},
		{0x8126, 0, "SHR V1, V2"},
		{0xa20a, 0, "LD I, 0x20a"},
		{0xb300, 0, "JP V0, 0x300"},
		{0xd125, 0, "DRW V1, V2, 0x5"},
		{0xe39e, 0, "SKP V3"},
		{0xf40a, 0, "LD V4, K"},
		{0xf533, 0, "LD B, V5"},
		{0xf000, 0xbeef, "XLDL I, 0xbeef"},
		{0xf201, 0, "XPLA 0x2"},
		{0xf002, 0, "XSTA"},
		{0x00d4, 0, "SCU 4"},
		{0x5ab2, 0, "XST Va, Vb"},
		{0xf875, 0, "LD R, V8"},
		{0x8128, 0, disassembly.Unknown},
		{0x0123, 0, disassembly.Unknown},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, disassembly.Mnemonic(tt.opcode, tt.next, arch.XOCHIP16, q), tt.mnemonic, tt.opcode)
	}
}

func TestArchitectureGating(t *testing.T) {
	q := arch.Quirks{}

	// scroll down is Super-CHIP 1.1 and above
	test.ExpectFailure(t, disassembly.Decode(0x00c2, 0, arch.CHIP48, q).Defined())
	test.ExpectSuccess(t, disassembly.Decode(0x00c2, 0, arch.SCHIP11, q).Defined())

	// scroll up is XO-CHIP only
	test.ExpectFailure(t, disassembly.Decode(0x00d2, 0, arch.SCHIP11, q).Defined())
	test.ExpectSuccess(t, disassembly.Decode(0x00d2, 0, arch.XOCHIP, q).Defined())

	// the RPL registers above 7 are XO-CHIP only
	test.ExpectFailure(t, disassembly.Decode(0xf000, 0, arch.CHIP8, q).Defined())
	test.ExpectSuccess(t, disassembly.Decode(0xf775, 0, arch.SCHIP10, q).Defined())
	test.ExpectFailure(t, disassembly.Decode(0xf875, 0, arch.SCHIP10, q).Defined())
	test.ExpectSuccess(t, disassembly.Decode(0xf875, 0, arch.XOCHIP, q).Defined())

	// long index load occupies four bytes
	test.ExpectEquality(t, disassembly.Decode(0xf000, 0x1234, arch.XOCHIP, q).Size, 4)
}

func TestQuirkPresentation(t *testing.T) {
	test.ExpectEquality(t, disassembly.Mnemonic(0x812e, 0, arch.SCHIP11, arch.Quirks{Shift: true}), "SHL V1")
	test.ExpectEquality(t, disassembly.Mnemonic(0x812e, 0, arch.SCHIP11, arch.Quirks{}), "SHL V1, V2")
	test.ExpectEquality(t, disassembly.Mnemonic(0xb300, 0, arch.SCHIP11, arch.Quirks{Jump: true}), "JP V3, 0x300")
}

func TestLinearDisassembly(t *testing.T) {
	rom := []uint8{0x60, 0x05, 0xa2, 0x0a, 0x00, 0xe0, 0xf0, 0x00, 0x12, 0x34, 0x12, 0x00, 0xff}
	dsm := disassembly.FromROM(rom, arch.XOCHIP)

	test.DemandEquality(t, len(dsm.Entries), 6)
	test.ExpectEquality(t, dsm.Entries[0].Address, uint16(0x200))
	test.ExpectEquality(t, dsm.Entries[3].Address, uint16(0x206))
	test.ExpectEquality(t, dsm.Entries[3].Size, 4)
	test.ExpectEquality(t, dsm.Entries[4].Address, uint16(0x20a))
	test.ExpectEquality(t, dsm.Entries[5].Operator, "DB")

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 7)
	test.ExpectEquality(t, lines[1], "0x200  LD    V0, 0x05")
	test.ExpectEquality(t, lines[3], "0x204  CLS")
	test.ExpectEquality(t, lines[4], "0x206  XLDL  I, 0x1234")
	test.ExpectEquality(t, lines[6], "0x20c  DB    0xff")

	w.Clear()
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectSuccess(t, w.Contains("0x206  f0 00 12 34  XLDL  I, 0x1234"))

	// the convenience function produces the same listing as Write()
	v := &test.CompareWriter{}
	test.ExpectSuccess(t, disassembly.Disassemble(v, rom, arch.XOCHIP))
	test.ExpectEquality(t, v.Lines()[4], "0x206  XLDL  I, 0x1234")
	test.ExpectEquality(t, len(v.Lines()), 7)
}

func TestTruncatedLongInstruction(t *testing.T) {
	rom := []uint8{0x00, 0xe0, 0xf0, 0x00, 0x12}
	dsm := disassembly.FromROM(rom, arch.XOCHIP)

	test.DemandEquality(t, len(dsm.Entries), 2)
	test.ExpectEquality(t, dsm.Entries[1].Size, 3)
	test.ExpectEquality(t, len(dsm.Entries[1].Bytes), 3)
}
