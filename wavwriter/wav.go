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

// Package wavwriter records the buzzer of the emulated machine to a WAV file.
// The WavWriter sits between the CPU and the real audio backend, forwarding
// every call, so the program can be heard and recorded at the same time.
//
// Audio data is buffered in memory in its entirety and written to disk when
// Close() is called. It is therefore only suitable for short recordings.
package wavwriter

import (
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/logger"
)

// WavError is the pattern used for errors raised by the WavWriter.
const WavError = "wavwriter: %v"

// SampleRate of the WAV file.
const SampleRate = 22050

// WavWriter implements the cpu.Audio interface.
type WavWriter struct {
	filename string
	forward  cpu.Audio
	clock    clocks.Clock

	gen *audio.Generator

	// the time of creation and the number of samples recorded since then
	start    time.Duration
	recorded int

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. Calls
// are forwarded to the forward argument, which can be nil. If the clock is
// nil then a monotonic clock is used. The clock should be the same as the
// clock used by the CPU.
func New(filename string, forward cpu.Audio, clock clocks.Clock) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavError, "no filename")
	}
	if clock == nil {
		clock = clocks.NewMonotonic()
	}

	aw := &WavWriter{
		filename: filename,
		forward:  forward,
		clock:    clock,
		gen:      audio.NewGenerator(SampleRate),
		start:    clock.Now(),
	}

	return aw, nil
}

// record generator output from the last recorded sample until now.
func (aw *WavWriter) catchUp() {
	target := int(int64(aw.clock.Now()-aw.start) * SampleRate / int64(time.Second))
	n := target - aw.recorded
	if n <= 0 {
		return
	}

	p := make([]uint8, n)
	_, _ = aw.gen.Read(p)
	for _, s := range p {
		aw.buffer = append(aw.buffer, int(s))
	}
	aw.recorded = target
}

// SetFrequency implements the cpu.Audio interface.
func (aw *WavWriter) SetFrequency(hz float64) {
	aw.catchUp()
	aw.gen.SetFrequency(hz)
	if aw.forward != nil {
		aw.forward.SetFrequency(hz)
	}
}

// EnableBuzzer implements the cpu.Audio interface.
func (aw *WavWriter) EnableBuzzer(enable bool) {
	aw.catchUp()
	aw.gen.EnableBuzzer(enable)
	if aw.forward != nil {
		aw.forward.EnableBuzzer(enable)
	}
}

// SetBuffer implements the cpu.Audio interface.
func (aw *WavWriter) SetBuffer(buffer []uint8) {
	aw.catchUp()
	aw.gen.SetBuffer(buffer)
	if aw.forward != nil {
		aw.forward.SetBuffer(buffer)
	}
}

// IsNull implements the cpu.Audio interface. The WavWriter is never null,
// even if the forwarded audio is, because it records the audio instructions.
func (aw *WavWriter) IsNull() bool {
	return false
}

// Close records up until the current time and writes the WAV file.
func (aw *WavWriter) Close() (rerr error) {
	aw.catchUp()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavError, err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, 8, 1, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(WavError, err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf(WavError, err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
