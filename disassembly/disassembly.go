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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/superchocchip/superchocchip/hardware/arch"
)

// Origin is the address at which ROMs are loaded.
const Origin = 0x200

// Entry is a single line of a disassembly.
type Entry struct {
	Address uint16
	Bytes   []uint8
	Instruction
}

// Bytecode returns the bytes of the entry as a string of hex pairs.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteString(" ")
		}
		fmt.Fprintf(&s, "%02x", b)
	}
	return s.String()
}

// Disassembly is a linear disassembly of a ROM.
type Disassembly struct {
	Arch    arch.Architecture
	Quirks  arch.Quirks
	Entries []Entry
}

// FromROM disassembles the data as though it was loaded at the Origin address.
// The default quirks for the architecture are used.
func FromROM(rom []uint8, a arch.Architecture) *Disassembly {
	dsm := &Disassembly{
		Arch:   a,
		Quirks: a.DefaultQuirks(),
	}

	word := func(idx int) uint16 {
		if idx+1 >= len(rom) {
			return 0
		}
		return uint16(rom[idx])<<8 | uint16(rom[idx+1])
	}

	idx := 0
	for idx < len(rom) {
		address := uint16(Origin + idx)

		// odd byte at the end of the ROM
		if idx+1 >= len(rom) {
			dsm.Entries = append(dsm.Entries, Entry{
				Address: address,
				Bytes:   rom[idx:],
				Instruction: Instruction{
					Operator: "DB",
					Operand:  fmt.Sprintf("0x%02x", rom[idx]),
					Size:     1,
				},
			})
			break
		}

		ins := Decode(word(idx), word(idx+2), a, dsm.Quirks)

		// a long instruction that has been truncated by the end of the ROM
		if idx+ins.Size > len(rom) {
			ins = Decode(word(idx), 0, a, dsm.Quirks)
			ins.Size = len(rom) - idx
		}

		dsm.Entries = append(dsm.Entries, Entry{
			Address:     address,
			Bytes:       rom[idx : idx+ins.Size],
			Instruction: ins,
		})

		idx += ins.Size
	}

	return dsm
}

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	if _, err := fmt.Fprintf(output, "--- %s (%s) ---\n", dsm.Arch, dsm.Quirks); err != nil {
		return err
	}
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	var s string
	if attr.ByteCode {
		s = fmt.Sprintf("0x%03x  %-11s  %-5s %s", e.Address, e.Bytecode(), e.Operator, e.Operand)
	} else {
		s = fmt.Sprintf("0x%03x  %-5s %s", e.Address, e.Operator, e.Operand)
	}
	_, err := io.WriteString(output, strings.TrimRight(s, " ")+"\n")
	return err
}

// Disassemble writes a linear disassembly of the ROM to io.Writer. The
// architecture's default quirks are used.
func Disassemble(output io.Writer, rom []uint8, a arch.Architecture) error {
	return FromROM(rom, a).Write(output, WriteAttr{})
}
