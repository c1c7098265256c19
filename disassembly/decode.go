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

	"github.com/superchocchip/superchocchip/hardware/arch"
)

// Unknown is the operator used for opcodes that are not defined for the
// architecture.
const Unknown = "???"

// Instruction is a single decoded instruction.
type Instruction struct {
	Opcode   uint16
	Operator string
	Operand  string

	// the number of bytes occupied by the instruction. this is always two
	// except for the XO-CHIP long index load, which is followed by the address
	// it loads
	Size int
}

// Defined returns false if the opcode is not defined for the architecture
// it was decoded with.
func (ins Instruction) Defined() bool {
	return ins.Operator != Unknown
}

func (ins Instruction) String() string {
	if ins.Operand == "" {
		return ins.Operator
	}
	return fmt.Sprintf("%s %s", ins.Operator, ins.Operand)
}

// Decode the opcode for the architecture. The next argument is the word that
// follows the opcode in memory. It is only used by the XO-CHIP long index
// load.
//
// The quirks affect how some instructions are presented. For example, the
// shift instructions only show the source register when the shift quirk is
// not set.
func Decode(opcode uint16, next uint16, a arch.Architecture, q arch.Quirks) Instruction {
	ins := Instruction{
		Opcode:   opcode,
		Operator: Unknown,
		Size:     2,
	}

	x := (opcode >> 8) & 0x0f
	y := (opcode >> 4) & 0x0f
	n := opcode & 0x0f
	kk := opcode & 0xff
	nnn := opcode & 0x0fff

	vxkk := func(operator string) {
		ins.Operator = operator
		ins.Operand = fmt.Sprintf("V%01x, 0x%02x", x, kk)
	}
	vxvy := func(operator string) {
		ins.Operator = operator
		ins.Operand = fmt.Sprintf("V%01x, V%01x", x, y)
	}
	vx := func(operator string, format string) {
		ins.Operator = operator
		ins.Operand = fmt.Sprintf(format, x)
	}

	switch opcode >> 12 {
	case 0x0:
		switch {
		case opcode == 0x00e0:
			ins.Operator = "CLS"
		case opcode == 0x00ee:
			ins.Operator = "RET"
		case opcode == 0x00fd && a >= arch.SCHIP10:
			ins.Operator = "EXIT"
		case opcode == 0x00fe && a >= arch.SCHIP10:
			ins.Operator = "LOW"
		case opcode == 0x00ff && a >= arch.SCHIP10:
			ins.Operator = "HIGH"
		case opcode == 0x00fb && a >= arch.SCHIP11:
			ins.Operator = "SCR"
		case opcode == 0x00fc && a >= arch.SCHIP11:
			ins.Operator = "SCL"
		case opcode&0xfff0 == 0x00c0 && a >= arch.SCHIP11:
			ins.Operator = "SCD"
			ins.Operand = fmt.Sprintf("%01x", n)
		case opcode&0xfff0 == 0x00d0 && a >= arch.XOCHIP:
			ins.Operator = "SCU"
			ins.Operand = fmt.Sprintf("%01x", n)
		}

	case 0x1:
		ins.Operator = "JP"
		ins.Operand = fmt.Sprintf("0x%03x", nnn)

	case 0x2:
		ins.Operator = "CALL"
		ins.Operand = fmt.Sprintf("0x%03x", nnn)

	case 0x3:
		vxkk("SE")

	case 0x4:
		vxkk("SNE")

	case 0x5:
		switch {
		case n == 0x0:
			vxvy("SE")
		case n == 0x2 && a >= arch.XOCHIP:
			vxvy("XST")
		case n == 0x3 && a >= arch.XOCHIP:
			vxvy("XLD")
		}

	case 0x6:
		vxkk("LD")

	case 0x7:
		vxkk("ADD")

	case 0x8:
		switch n {
		case 0x0:
			vxvy("LD")
		case 0x1:
			vxvy("OR")
		case 0x2:
			vxvy("AND")
		case 0x3:
			vxvy("XOR")
		case 0x4:
			vxvy("ADD")
		case 0x5:
			vxvy("SUB")
		case 0x6:
			vxvy("SHR")
			if q.Shift {
				ins.Operand = fmt.Sprintf("V%01x", x)
			}
		case 0x7:
			vxvy("SUBN")
		case 0xe:
			vxvy("SHL")
			if q.Shift {
				ins.Operand = fmt.Sprintf("V%01x", x)
			}
		}

	case 0x9:
		if n == 0x0 {
			vxvy("SNE")
		}

	case 0xa:
		ins.Operator = "LD"
		ins.Operand = fmt.Sprintf("I, 0x%03x", nnn)

	case 0xb:
		r := uint16(0)
		if q.Jump {
			r = x
		}
		ins.Operator = "JP"
		ins.Operand = fmt.Sprintf("V%01x, 0x%03x", r, nnn)

	case 0xc:
		vxkk("RND")

	case 0xd:
		ins.Operator = "DRW"
		ins.Operand = fmt.Sprintf("V%01x, V%01x, 0x%01x", x, y, n)

	case 0xe:
		switch kk {
		case 0x9e:
			vx("SKP", "V%01x")
		case 0xa1:
			vx("SKNP", "V%01x")
		}

	case 0xf:
		switch kk {
		case 0x00:
			if x == 0 && a >= arch.XOCHIP {
				ins.Operator = "XLDL"
				ins.Operand = fmt.Sprintf("I, 0x%04x", next)
				ins.Size = 4
			}
		case 0x01:
			if a >= arch.XOCHIP {
				vx("XPLA", "0x%01x")
			}
		case 0x02:
			if x == 0 && a >= arch.XOCHIP {
				ins.Operator = "XSTA"
			}
		case 0x07:
			vx("LD", "V%01x, DT")
		case 0x0a:
			vx("LD", "V%01x, K")
		case 0x15:
			vx("LD", "DT, V%01x")
		case 0x18:
			vx("LD", "ST, V%01x")
		case 0x1e:
			vx("ADD", "I, V%01x")
		case 0x29:
			vx("LD", "F, V%01x")
		case 0x30:
			if a >= arch.SCHIP11 {
				vx("LD", "HF, V%01x")
			}
		case 0x33:
			vx("LD", "B, V%01x")
		case 0x3a:
			if a >= arch.XOCHIP {
				vx("XPR", "V%01x")
			}
		case 0x55:
			vx("LD", "[I], V%01x")
		case 0x65:
			vx("LD", "V%01x, [I]")
		case 0x75:
			if a >= arch.XOCHIP || (a >= arch.SCHIP10 && x <= 7) {
				vx("LD", "R, V%01x")
			}
		case 0x85:
			if a >= arch.XOCHIP || (a >= arch.SCHIP10 && x <= 7) {
				vx("LD", "V%01x, R")
			}
		}
	}

	return ins
}

// Mnemonic is a convenience function that returns the decoded instruction as
// a string.
func Mnemonic(opcode uint16, next uint16, a arch.Architecture, q arch.Quirks) string {
	return Decode(opcode, next, a, q).String()
}
