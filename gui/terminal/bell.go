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

package terminal

import (
	"io"
	"sync"
)

const bellChar = "\a"

// Bell implements the cpu.Audio interface. The bell rings whenever the
// buzzer is enabled. The XO-CHIP waveform and pitch are ignored.
type Bell struct {
	crit   sync.Mutex
	output io.Writer
}

// NewBell is the preferred method of initialisation for the Bell type.
func NewBell(output io.Writer) *Bell {
	return &Bell{output: output}
}

// SetFrequency implements the cpu.Audio interface.
func (bell *Bell) SetFrequency(_ float64) {}

// EnableBuzzer implements the cpu.Audio interface.
func (bell *Bell) EnableBuzzer(enable bool) {
	if !enable {
		return
	}
	bell.crit.Lock()
	defer bell.crit.Unlock()
	_, _ = io.WriteString(bell.output, bellChar)
}

// SetBuffer implements the cpu.Audio interface.
func (bell *Bell) SetBuffer(_ []uint8) {}

// IsNull implements the cpu.Audio interface.
func (bell *Bell) IsNull() bool {
	return false
}
