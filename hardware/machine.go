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

import (
	"fmt"
	"os"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/hardware/arch"
	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/hardware/fonts"
	"github.com/superchocchip/superchocchip/hardware/framebuffer"
	"github.com/superchocchip/superchocchip/hardware/memory"
	"github.com/superchocchip/superchocchip/hardware/stack"
	"github.com/superchocchip/superchocchip/logger"
)

// MachineError is the pattern used for errors raised while creating the
// machine or loading a ROM.
const MachineError = "machine: %v"

// ROMOrigin is the address in main memory at which ROMs are loaded and at
// which execution begins.
const ROMOrigin = 0x200

// DefaultFrequency is the playback rate of the audio waveform until the
// program changes it.
const DefaultFrequency = 4000.0

// DefaultWaveform is a square wave. It is the audio waveform until the
// program changes it.
var DefaultWaveform = []uint8{0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff}

// Config is used to create a new Machine.
type Config struct {
	Arch arch.Architecture

	// instructions per second. nil means the default for the architecture and
	// zero means uncapped
	ClockSpeed *int

	// quirk overrides. nil fields use the default for the architecture
	Quirks arch.Overrides

	// screen wrapping. nil means the default for the architecture
	Wrap *bool

	// seed for the random number generator. zero means a random seed
	Seed int64

	// nil means a monotonic clock
	Clock clocks.Clock
}

// Machine is the root of the emulation.
type Machine struct {
	Arch  arch.Architecture
	CPU   *cpu.CPU
	Mem   *memory.Memory
	Stack *stack.Stack
	FB    *framebuffer.Framebuffer

	// the size of the loaded ROM in bytes
	romSize int
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The tracer may be nil.
func NewMachine(cfg Config, renderer framebuffer.Renderer, inputs cpu.Inputs, audio cpu.Audio, tracer cpu.Tracer) (*Machine, error) {
	var err error

	m := &Machine{
		Arch: cfg.Arch,
		Mem:  memory.NewMemory(cfg.Arch.MemorySize()),
	}

	// the big font is not available to the original CHIP-8
	err = m.Mem.WriteBlock(fonts.SmallOrigin, fonts.Small[:])
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}
	if cfg.Arch.HasBigFont() {
		err = m.Mem.WriteBlock(fonts.BigOrigin, fonts.Big[:])
		if err != nil {
			return nil, curated.Errorf(MachineError, err)
		}
	}

	wrap := cfg.Arch.DefaultWrap()
	if cfg.Wrap != nil {
		wrap = *cfg.Wrap
	}

	m.FB, err = framebuffer.NewFramebuffer(renderer, cfg.Arch.Planes(), wrap)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	audio.SetFrequency(DefaultFrequency)
	audio.SetBuffer(DefaultWaveform)

	m.Stack = stack.NewStack(cfg.Arch.StackDepth())

	m.CPU = cpu.NewCPU(cpu.Config{
		Arch:       cfg.Arch,
		ClockSpeed: cfg.ClockSpeed,
		Quirks:     cfg.Quirks,
		Seed:       cfg.Seed,
	}, m.Mem, m.Stack, m.FB, inputs, audio, tracer, cfg.Clock)

	logger.Logf(logger.Allow, "machine", "%s with %d bytes of memory and %d plane(s)", cfg.Arch, m.Mem.Size(), cfg.Arch.Planes())
	logger.Logf(logger.Allow, "machine", "quirks: %s", m.CPU.Quirks)
	logger.Logf(logger.Allow, "machine", "screen wrap: %v", wrap)
	if speed := m.CPU.ClockSpeed(); speed == 0 {
		logger.Log(logger.Allow, "machine", "clock: uncapped")
	} else {
		logger.Logf(logger.Allow, "machine", "clock: %d instructions per second", speed)
	}

	return m, nil
}

// LoadROM copies the data into main memory at the ROM origin.
func (m *Machine) LoadROM(data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(MachineError, "ROM is empty")
	}
	if err := m.Mem.WriteBlock(ROMOrigin, data); err != nil {
		return curated.Errorf(MachineError, err)
	}
	m.romSize = len(data)
	logger.Logf(logger.Allow, "machine", "ROM loaded (%d bytes)", len(data))
	return nil
}

// LoadROMFile reads the file and loads it with LoadROM().
func (m *Machine) LoadROMFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(MachineError, err)
	}
	return m.LoadROM(data)
}

// ROMSize returns the size of the loaded ROM in bytes.
func (m *Machine) ROMSize() int {
	return m.romSize
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s (%s)", m.Arch, m.CPU.Quirks)
}
