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

package userinput

// Null implements the cpu.Inputs interface. No keys are ever pressed and the
// emulation is never asked to quit.
type Null struct{}

// ProcessMessages implements the cpu.Inputs interface.
func (Null) ProcessMessages() bool {
	return false
}

// IsKeyDown implements the cpu.Inputs interface.
func (Null) IsKeyDown(_ uint8) bool {
	return false
}

// SetupKeypress implements the cpu.Inputs interface.
func (Null) SetupKeypress() {
}

// GetKeypress implements the cpu.Inputs interface.
func (Null) GetKeypress() (uint8, bool) {
	return 0, false
}
