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

package audio

// Null implements the cpu.Audio interface. The CPU does not execute the
// XO-CHIP audio instructions when the audio is null.
type Null struct{}

// SetFrequency implements the cpu.Audio interface.
func (Null) SetFrequency(_ float64) {}

// EnableBuzzer implements the cpu.Audio interface.
func (Null) EnableBuzzer(_ bool) {}

// SetBuffer implements the cpu.Audio interface.
func (Null) SetBuffer(_ []uint8) {}

// IsNull implements the cpu.Audio interface.
func (Null) IsNull() bool {
	return true
}
