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

package audio_test

import (
	"testing"

	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/test"
)

func TestExpand(t *testing.T) {
	s := audio.Expand([]uint8{0x81, 0x0f})
	test.DemandEquality(t, len(s), 16)

	expected := []uint8{
		0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff,
		0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
	}
	for i := range expected {
		test.ExpectEquality(t, s[i], expected[i], i)
	}

	test.ExpectEquality(t, len(audio.Expand(make([]uint8, 16))), 128)
	test.ExpectEquality(t, len(audio.Expand(nil)), 0)
}

func TestGeneratorSilence(t *testing.T) {
	gen := audio.NewGenerator(audio.SampleRate)
	gen.SetFrequency(audio.SampleRate)
	gen.SetBuffer([]uint8{0xff, 0xff})

	p := make([]uint8, 32)
	n, err := gen.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(p))
	for i := range p {
		test.ExpectEquality(t, p[i], uint8(audio.Silence), i)
	}
}

func TestGeneratorWaveform(t *testing.T) {
	gen := audio.NewGenerator(audio.SampleRate)

	// one waveform sample for every output sample
	gen.SetFrequency(audio.SampleRate)
	gen.SetBuffer([]uint8{0x00, 0xff})
	gen.EnableBuzzer(true)
	test.ExpectSuccess(t, gen.Enabled())

	p := make([]uint8, 32)
	_, _ = gen.Read(p)
	for i := range p {
		if (i/8)%2 == 0 {
			test.ExpectInequality(t, p[i], uint8(audio.Silence), i)
			test.ExpectEquality(t, p[i] < audio.Silence, true, i)
		} else {
			test.ExpectEquality(t, p[i] > audio.Silence, true, i)
		}
	}

	// half the frequency means each waveform sample is output twice
	gen.SetFrequency(audio.SampleRate / 2)
	gen.SetBuffer([]uint8{0x55})
	_, _ = gen.Read(p[:4])
	test.ExpectEquality(t, p[0], p[1])
	test.ExpectEquality(t, p[2], p[3])
	test.ExpectInequality(t, p[1], p[2])

	gen.EnableBuzzer(false)
	_, _ = gen.Read(p[:1])
	test.ExpectEquality(t, p[0], uint8(audio.Silence))
}

func TestNull(t *testing.T) {
	var au audio.Null
	test.ExpectSuccess(t, au.IsNull())
	test.ExpectFailure(t, audio.NewGenerator(audio.SampleRate).IsNull())
}
