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

// Expand turns every bit of the waveform into a sample of 0x00 or 0xff. The
// most significant bit of each byte is played first.
func Expand(waveform []uint8) []uint8 {
	samples := make([]uint8, 0, len(waveform)*8)
	for _, b := range waveform {
		for bit := 7; bit >= 0; bit-- {
			samples = append(samples, ((b>>bit)&0x01)*0xff)
		}
	}
	return samples
}
