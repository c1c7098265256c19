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

// Package debugger implements the trace collaborator for the CPU. When live,
// a line describing the machine state is output before every instruction is
// executed:
//
//	V: 0x0000000000000000000000000000000 I: 0x0000 DT: 0x00 DS: 0x00 PC: 0x200 OP: 0x00e0 IN: CLS
//
// The V registers are listed from VF down to V0. The PC value is the address
// of the instruction being executed and not the address of the next
// instruction.
//
// When the CPU meets an instruction that it cannot execute the verbose form
// of the trace is added to the error message. The verbose form adds the RPL
// registers (for architectures that have them) and the contents of the stack.
//
// The DumpMemviz() function writes a Graphviz representation of the CPU
// state. This is useful for post-mortem examination of a program that has
// ended with an error.
package debugger
