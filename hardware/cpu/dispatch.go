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

package cpu

import (
	"fmt"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/disassembly"
	"github.com/superchocchip/superchocchip/hardware/arch"
)

// the coarse table is indexed by the top nibble of the opcode. some entries
// look up the instruction in the secondary table using a mask:
//
//	0x0            full opcode
//	0x5, 0x8, 0x9  opcode & 0xf00f
//	0xe, 0xf       opcode & 0xf0ff
//
// instructions are only added to the secondary table if they are available
// for the architecture.
func (mc *CPU) buildInstructionTable() {
	mc.coarse = [16]func() error{
		0x0: mc.secondaryExact,
		0x1: mc.jp,
		0x2: mc.call,
		0x3: mc.seByte,
		0x4: mc.sneByte,
		0x5: mc.secondaryRegisters,
		0x6: mc.ldByte,
		0x7: mc.addByte,
		0x8: mc.secondaryRegisters,
		0x9: mc.secondaryRegisters,
		0xa: mc.ldI,
		0xb: mc.jpOffset,
		0xc: mc.rnd,
		0xd: mc.drw,
		0xe: mc.secondaryByte,
		0xf: mc.secondaryByte,
	}

	mc.secondary = map[uint16]func() error{
		0x00e0: mc.cls,
		0x00ee: mc.ret,

		0x5000: mc.seRegister,
		0x8000: mc.ldRegister,
		0x8001: mc.or,
		0x8002: mc.and,
		0x8003: mc.xor,
		0x8004: mc.addRegister,
		0x8005: mc.sub,
		0x8006: mc.shr,
		0x8007: mc.subn,
		0x800e: mc.shl,
		0x9000: mc.sneRegister,

		0xe09e: mc.skp,
		0xe0a1: mc.sknp,
		0xf007: mc.ldVxDT,
		0xf00a: mc.ldVxK,
		0xf015: mc.ldDTVx,
		0xf018: mc.ldSTVx,
		0xf01e: mc.addI,
		0xf029: mc.ldF,
		0xf033: mc.ldB,
		0xf055: mc.store,
		0xf065: mc.load,
	}

	if mc.Arch >= arch.SCHIP10 {
		mc.secondary[0x00fd] = mc.exit
		mc.secondary[0x00fe] = mc.low
		mc.secondary[0x00ff] = mc.high
		mc.secondary[0xf075] = mc.storeRPL
		mc.secondary[0xf085] = mc.loadRPL
	}

	if mc.Arch >= arch.SCHIP11 {
		mc.secondary[0x00fb] = mc.scr
		mc.secondary[0x00fc] = mc.scl
		mc.secondary[0xf030] = mc.ldHF
		for n := uint16(0); n <= 0xf; n++ {
			mc.secondary[0x00c0|n] = mc.scd
		}
	}

	if mc.Arch >= arch.XOCHIP {
		mc.secondary[0x5002] = mc.xst
		mc.secondary[0x5003] = mc.xld
		mc.secondary[0xf000] = mc.xldl
		mc.secondary[0xf001] = mc.xpla
		mc.secondary[0xf002] = mc.xsta
		mc.secondary[0xf03a] = mc.xpr
		for n := uint16(0); n <= 0xf; n++ {
			mc.secondary[0x00d0|n] = mc.scu
		}
	}
}

func (mc *CPU) dispatch(masked uint16) error {
	ins, ok := mc.secondary[masked]
	if !ok {
		return mc.unsupported()
	}
	return ins()
}

func (mc *CPU) secondaryExact() error {
	return mc.dispatch(mc.Opcode)
}

func (mc *CPU) secondaryRegisters() error {
	return mc.dispatch(mc.Opcode & 0xf00f)
}

func (mc *CPU) secondaryByte() error {
	return mc.dispatch(mc.Opcode & 0xf0ff)
}

// DecodeExec executes the instruction in the Opcode field. The program
// counter should already point to the following instruction.
func (mc *CPU) DecodeExec() error {
	if mc.tracer != nil && mc.tracer.IsLive() {
		mc.tracer.Output(mc, disassembly.Mnemonic(mc.Opcode, mc.Fetch(), mc.Arch, mc.Quirks))
	}
	return mc.coarse[mc.Opcode>>12]()
}

// unsupported returns the error for an opcode that can not be executed by
// the architecture.
func (mc *CPU) unsupported() error {
	detail := fmt.Sprintf("opcode 0x%04x at address 0x%03x is not emulated for %s", mc.Opcode, mc.DebugPC, mc.Arch)
	if mc.tracer != nil {
		detail = fmt.Sprintf("%s\n\n%s", detail, mc.tracer.Debug(mc, disassembly.Unknown, true))
	}
	return curated.Errorf(UnsupportedOpcode, detail)
}
