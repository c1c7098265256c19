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

// Package arch describes the members of the CHIP-8 family that can be
// emulated and the quirks that distinguish them.
//
// Architectures are ordered. Each architecture supports the instructions of
// the architectures that come before it, so feature tests are written as
// comparisons:
//
//	if a >= arch.SCHIP11 {
//		// scroll instructions are available
//	}
//
// The default quirks for an architecture are returned by DefaultQuirks() and
// can be selectively changed with Quirks.Override().
package arch
