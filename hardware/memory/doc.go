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

// Package memory implements the byte addressable store used for both the main
// memory of the emulated machine and for each plane of video memory.
//
// Writes are bounds checked against the size of memory and a write beyond the
// top of memory is a MemoryFault. Reads are not bounds checked. Address
// arithmetic is the responsibility of the caller: the CPU masks addresses to
// the width of the architecture's address space before accessing memory, so a
// correctly masked address can never fault.
//
// The MoveMem() and ZeroBlock() functions exist to support the scrolling of
// video memory.
package memory
