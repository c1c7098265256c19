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

package sdl

import (
	"github.com/superchocchip/superchocchip/audio"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples pushed to the device at a time. slightly more than a
// sixtieth of a second so that the queue never runs dry
const frameSamples = audio.SampleRate/60 + 64

// the device queue is topped up whenever it holds fewer than this number of
// bytes. one byte per sample
const queueThreshold = frameSamples * 2

// Audio outputs sound using SDL. It implements the cpu.Audio interface
// through the embedded Generator.
type Audio struct {
	*audio.Generator

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
// SDL must have been initialised with INIT_AUDIO.
func NewAudio() (*Audio, error) {
	aud := &Audio{
		buffer: make([]uint8, frameSamples),
	}

	request := &sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, request, &aud.spec, 0)
	if err != nil {
		return nil, err
	}

	aud.Generator = audio.NewGenerator(int(aud.spec.Freq))

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Service pushes more samples to the device if the queue is running low.
func (aud *Audio) Service() error {
	for sdl.GetQueuedAudioSize(aud.id) < queueThreshold {
		_, _ = aud.Read(aud.buffer)
		if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
			return err
		}
	}
	return nil
}

// Close the audio device.
func (aud *Audio) Close() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
