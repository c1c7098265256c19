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

// Package otoplayer plays the buzzer of the emulated machine through the oto
// library. It is the audio backend for GUIs that do not have audio of their
// own.
package otoplayer

import (
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/logger"
)

// OtoError is the pattern used for errors raised by the Player.
const OtoError = "oto: %v"

// the amount of audio buffered by the oto context. short so that the buzzer
// responds quickly to the sound timer
const bufferDuration = 50 * time.Millisecond

// the amount of audio buffered by the player, in bytes. one byte per sample
const playerBuffer = 1024

// Player implements the cpu.Audio interface through the embedded Generator.
type Player struct {
	*audio.Generator

	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer is the preferred method of initialisation for the Player type.
// Only one Player should be created during the lifetime of the program.
func NewPlayer() (*Player, error) {
	pl := &Player{
		Generator: audio.NewGenerator(audio.SampleRate),
	}

	op := &oto.NewContextOptions{
		SampleRate:   audio.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
		BufferSize:   bufferDuration,
	}

	var ready chan struct{}
	var err error

	pl.ctx, ready, err = oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(OtoError, err)
	}
	<-ready

	pl.player = pl.ctx.NewPlayer(pl.Generator)
	pl.player.SetBufferSize(playerBuffer)
	pl.player.Play()

	logger.Logf(logger.Allow, "oto", "playing at %dHz", audio.SampleRate)

	return pl, nil
}

// Close stops playback.
func (pl *Player) Close() error {
	if pl.player == nil {
		return nil
	}
	err := pl.player.Close()
	pl.player = nil
	if err != nil {
		return curated.Errorf(OtoError, err)
	}
	return nil
}
