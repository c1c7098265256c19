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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a formatting pattern
// and values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Each package that raises a
// fault exports the pattern as a constant so that callers can test for it:
//
//	const MemoryFault = "memory fault: %s"
//
//	err := mem.Write(0x1000, 0xff)
//	if curated.Is(err, memory.MemoryFault) {
//		...
//	}
//
// Has() is similar to Is() but also looks inside any curated errors used as
// values, so a fault wrapped by a higher level pattern is still found:
//
//	err = curated.Errorf("machine: %v", err)
//	curated.Is(err, memory.MemoryFault)  // false
//	curated.Has(err, memory.MemoryFault) // true
//
// Chains are thought of as parts separated by ": ". The Error() function
// removes adjacent duplicate parts, so that wrapping an error with a pattern
// that begins with the same tag does not repeat the tag in the final message.
package curated
