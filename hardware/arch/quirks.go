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

package arch

import (
	"strings"
)

// Quirks are the behavioural differences between the members of the CHIP-8
// family. Once resolved a Quirks value should not change for the lifetime of
// the CPU.
type Quirks struct {
	// Fx55 and Fx65 advance the index register
	Load bool

	// 8xy6 and 8xyE shift Vx rather than Vy
	Shift bool

	// 8xy1, 8xy2 and 8xy3 reset VF
	Logic bool

	// Fx1E sets VF when the index register overflows
	IndexOverflow bool

	// Fx55 and Fx65 advance the index register by x rather than x+1
	IndexIncrement bool

	// Bnnn uses Vx rather than V0
	Jump bool

	// Dxyn waits for the vertical blank
	SpriteDelay bool
}

// DefaultQuirks returns the quirks for the architecture.
func (a Architecture) DefaultQuirks() Quirks {
	schip := a >= SCHIP10 && a <= SCHIP11
	return Quirks{
		Load:           a <= CHIP8HiRes || a >= SCHIP11,
		Shift:          schip,
		Logic:          a <= CHIP8HiRes,
		IndexOverflow:  false,
		IndexIncrement: a == CHIP48,
		Jump:           schip,
		SpriteDelay:    a <= CHIP8HiRes || a == CHIP48,
	}
}

// Overrides for the default quirks. A nil field means the default value is
// used.
type Overrides struct {
	Load           *bool
	Shift          *bool
	Logic          *bool
	IndexOverflow  *bool
	IndexIncrement *bool
	Jump           *bool
	SpriteDelay    *bool
}

// Override returns a copy of the quirks with the non-nil overrides applied.
func (q Quirks) Override(o Overrides) Quirks {
	apply := func(v *bool, f *bool) {
		if f != nil {
			*v = *f
		}
	}
	apply(&q.Load, o.Load)
	apply(&q.Shift, o.Shift)
	apply(&q.Logic, o.Logic)
	apply(&q.IndexOverflow, o.IndexOverflow)
	apply(&q.IndexIncrement, o.IndexIncrement)
	apply(&q.Jump, o.Jump)
	apply(&q.SpriteDelay, o.SpriteDelay)
	return q
}

func (q Quirks) String() string {
	var s []string
	flag := func(b bool, name string) {
		if b {
			s = append(s, name)
		}
	}
	flag(q.Load, "load")
	flag(q.Shift, "shift")
	flag(q.Logic, "logic")
	flag(q.IndexOverflow, "index-overflow")
	flag(q.IndexIncrement, "index-increment")
	flag(q.Jump, "jump")
	flag(q.SpriteDelay, "sprite-delay")
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ", ")
}
