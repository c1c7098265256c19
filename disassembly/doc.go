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

// Package disassembly turns CHIP-8 family bytecode into text. The Decode()
// function is used by the debugger to produce the instruction text for trace
// output and the Disassembly type produces a linear listing of an entire ROM.
//
// Decoding is architecture aware. An opcode that is not available for the
// selected architecture is decoded with the Unknown operator, in the same way
// that the CPU refuses to execute it.
//
// Linear disassembly treats every word as an instruction. Data embedded in the
// program (sprites mostly) will be listed as though it is code. There is no
// attempt to follow the flow of the program.
package disassembly
