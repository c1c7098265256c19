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

package cpu

import (
	"math"
	"time"
)

// Run the CPU from the start address until the user quits or until an
// error occurs. A quit is not an error and nil is returned.
func (mc *CPU) Run(start uint16) error {
	mc.PC = start & 0x0fff

	for {
		quit, err := mc.Step()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Step runs a single cycle of the CPU. A cycle includes servicing the display
// and input at 60Hz, updating the timers, executing one instruction and then
// waiting for the next cycle to begin. Returns true if the user has asked to
// quit, in which case no instruction will have been executed.
func (mc *CPU) Step() (bool, error) {
	now := mc.clock.Now()
	mc.thisTime = now

	// performance is reported before the refresh so that the refresh shows
	// the new report
	if now >= mc.nextPerfReport {
		mc.nextPerfReport = now.Truncate(time.Second) + time.Second
		mc.fb.ReportPerf(mc.fps, mc.ops)
		mc.fps = 0
		mc.ops = 0
	}

	if now >= mc.nextDisplayUpdate {
		if mc.inputs.ProcessMessages() {
			return true, nil
		}
		mc.nextDisplayUpdate = now + displayInterval
		mc.fb.RefreshDisplay()
		mc.fps++
	}

	mc.updateTimers(now)

	mc.DebugPC = mc.PC
	mc.Opcode = mc.Fetch()
	mc.IncPC()
	if err := mc.DecodeExec(); err != nil {
		return false, err
	}

	// wait for the next display refresh if a sprite has been drawn with the
	// sprite delay quirk
	if mc.vblankWait {
		for mc.clock.Now() < mc.nextDisplayUpdate {
		}
		mc.vblankWait = false
	}

	// the wait happens after execution so that the time taken by the
	// instruction is included in the interval
	if mc.coreInterval > 0 {
		next := now + mc.coreInterval
		for mc.clock.Now() < next {
		}
	}

	mc.ops++

	return false, nil
}

// timerValue returns the value of a timer at time now for a timer that
// reaches zero at the target time.
func timerValue(target time.Duration, now time.Duration) uint8 {
	v := math.Ceil((target - now).Seconds() * timerFrequency)
	return uint8(max(0, min(v, math.MaxUint8)))
}

// the timers are recalculated from their deadlines. the value of a running
// timer never increases
func (mc *CPU) updateTimers(now time.Duration) {
	if mc.DT > 0 {
		mc.DT = min(mc.DT, timerValue(mc.dtTarget, now))
	}

	if mc.ST > 0 {
		mc.ST = min(mc.ST, timerValue(mc.stTarget, now))
		if mc.ST == 0 {
			mc.audio.EnableBuzzer(false)
		}
	}
}
