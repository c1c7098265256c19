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

package hardware

// The continueCheck() function passed to RunWithCheck() is called at the end
// of a CPU instruction. The check may be expensive compared to a CHIP-8
// instruction so it is only called once every PerformanceBrake instructions.
const PerformanceBrake = 100

// Run the emulation from the ROM origin until the user quits. A quit is not
// an error.
func (m *Machine) Run() error {
	return m.CPU.Run(ROMOrigin)
}

// RunWithCheck is the same as Run() but with a function that decides whether
// the emulation should continue. The function should return false to end the
// emulation.
func (m *Machine) RunWithCheck(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		return m.Run()
	}

	m.CPU.PC = ROMOrigin

	var brake int
	for {
		quit, err := m.CPU.Step()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		brake++
		if brake >= PerformanceBrake {
			brake = 0
			cont, err := continueCheck()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
}
