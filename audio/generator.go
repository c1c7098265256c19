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

import (
	"sync"
)

// SampleRate is the default rate for Generator output.
const SampleRate = 44100

// levels of the unsigned eight-bit output
const (
	Silence = 0x80
	high    = 0xc0
	low     = 0x40
)

// Generator plays the waveform in a loop while the buzzer is enabled. It is
// safe to read from the Generator in a different goroutine to the one
// calling the cpu.Audio functions.
type Generator struct {
	crit sync.Mutex

	sampleRate float64

	samples   []uint8
	frequency float64
	enabled   bool

	// position in the samples array. fractional because the waveform
	// frequency is rarely a divisor of the sample rate
	pos float64
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator(sampleRate int) *Generator {
	return &Generator{
		sampleRate: float64(sampleRate),
	}
}

// SampleRate returns the output sample rate of the Generator.
func (gen *Generator) SampleRate() int {
	return int(gen.sampleRate)
}

// SetFrequency implements the cpu.Audio interface.
func (gen *Generator) SetFrequency(hz float64) {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	gen.frequency = hz
}

// EnableBuzzer implements the cpu.Audio interface.
func (gen *Generator) EnableBuzzer(enable bool) {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	gen.enabled = enable
}

// SetBuffer implements the cpu.Audio interface.
func (gen *Generator) SetBuffer(buffer []uint8) {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	gen.samples = Expand(buffer)
	if gen.pos >= float64(len(gen.samples)) {
		gen.pos = 0
	}
}

// IsNull implements the cpu.Audio interface.
func (gen *Generator) IsNull() bool {
	return false
}

// Enabled returns true if the buzzer is enabled.
func (gen *Generator) Enabled() bool {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	return gen.enabled
}

// Read implements the io.Reader interface. It always fills the slice.
func (gen *Generator) Read(p []uint8) (int, error) {
	gen.crit.Lock()
	defer gen.crit.Unlock()

	if !gen.enabled || len(gen.samples) == 0 || gen.frequency <= 0 {
		for i := range p {
			p[i] = Silence
		}
		return len(p), nil
	}

	step := gen.frequency / gen.sampleRate
	top := float64(len(gen.samples))

	for i := range p {
		if gen.samples[int(gen.pos)] != 0 {
			p[i] = high
		} else {
			p[i] = low
		}
		gen.pos += step
		for gen.pos >= top {
			gen.pos -= top
		}
	}

	return len(p), nil
}
