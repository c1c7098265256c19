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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/gui/null"
	"github.com/superchocchip/superchocchip/hardware"
	"github.com/superchocchip/superchocchip/hardware/arch"
	"github.com/superchocchip/superchocchip/logger"
)

// PerformanceError is the pattern used for errors raised by Check().
const PerformanceError = "performance: %v"

// the longest lead time before measurement begins. the lead time is a
// quarter of the measurement duration up to this value
const maxLeadTime = 2 * time.Second

// Check the performance of the emulator using the supplied ROM data. The
// emulation runs uncapped for the specified duration with the null GUI.
//
// The result is written to output as the number of instructions and frames
// per second.
func Check(output io.Writer, profile Profile, rom []uint8, a arch.Architecture, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	if dur <= 0 {
		return curated.Errorf(PerformanceError, fmt.Sprintf("duration must be positive (%s)", duration))
	}

	g := null.NewGUI()

	uncapped := 0
	m, err := hardware.NewMachine(hardware.Config{
		Arch:       a,
		ClockSpeed: &uncapped,
	}, g, g, g.Audio(), nil)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	err = m.LoadROM(rom)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	// the lead time allows the host to settle before measurement begins
	lead := min(dur/4, maxLeadTime)

	var measuring bool
	var ops int
	var startRefreshes int
	var startTime time.Time
	var measured time.Duration

	leadTimer := time.NewTimer(lead)
	defer leadTimer.Stop()

	var endTimer *time.Timer

	runner := func() error {
		return m.RunWithCheck(func() (bool, error) {
			if !measuring {
				select {
				case <-leadTimer.C:
					measuring = true
					startRefreshes, _ = g.Refreshes()
					startTime = time.Now()
					endTimer = time.NewTimer(dur)
				default:
				}
				return true, nil
			}

			ops += hardware.PerformanceBrake

			select {
			case <-endTimer.C:
				measured = time.Since(startTime)
				return false, nil
			default:
			}

			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if !measuring || measured == 0 {
		return curated.Errorf(PerformanceError, "emulation ended before measurement finished")
	}

	frames, _ := g.Refreshes()
	frames -= startRefreshes
	secs := measured.Seconds()

	logger.Logf(logger.Allow, "performance", "%d instructions and %d frames in %.2f seconds", ops, frames, secs)

	_, err = fmt.Fprintf(output, "%.0f ops/s, %.2f fps (%d instructions, %d frames in %.2f seconds)\n",
		float64(ops)/secs, float64(frames)/secs, ops, frames, secs)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	return nil
}
