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

// Package audio contains the parts of audio output that are common to all
// audio backends.
//
// The emulated machine has a one-bit buzzer. The XO-CHIP extension allows the
// buzzer to be driven by a waveform of 128 bits (16 bytes), played at a rate
// set by the pitch register. Expand() turns the bits of the waveform into
// eight-bit samples.
//
// The Generator type implements the cpu.Audio interface and is an io.Reader
// of unsigned eight-bit mono samples at a fixed sample rate. Backends that
// pull audio from the emulation, like the oto player, read directly from the
// Generator. Backends that push audio to a device, like SDL, read from the
// Generator once per frame.
//
// The Null type implements the cpu.Audio interface for when no audio is
// wanted.
package audio
