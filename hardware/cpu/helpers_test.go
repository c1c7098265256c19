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

package cpu_test

import (
	"testing"
	"time"

	"github.com/superchocchip/superchocchip/hardware/arch"
	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/hardware/fonts"
	"github.com/superchocchip/superchocchip/hardware/framebuffer"
	"github.com/superchocchip/superchocchip/hardware/memory"
	"github.com/superchocchip/superchocchip/hardware/stack"
	"github.com/superchocchip/superchocchip/test"
)

type mockRenderer struct {
	title string
}

func (r *mockRenderer) SetResolution(width int, height int) {}
func (r *mockRenderer) SetPixel(x int, y int, colour uint8) {}
func (r *mockRenderer) RefreshDisplay(changed bool) {}
func (r *mockRenderer) SetTitle(title string) { r.title = title }

type mockInputs struct {
	// ProcessMessages() returns true once it has been called more than
	// quitAfter times. zero means never quit
	quitAfter int
	polls     int

	down    [16]bool
	pending []uint8
	setups  int
}

func (in *mockInputs) ProcessMessages() bool {
	in.polls++
	return in.quitAfter > 0 && in.polls > in.quitAfter
}

func (in *mockInputs) IsKeyDown(key uint8) bool {
	return in.down[key&0x0f]
}

func (in *mockInputs) SetupKeypress() {
	in.setups++
	in.pending = in.pending[:0]
}

func (in *mockInputs) GetKeypress() (uint8, bool) {
	if len(in.pending) == 0 {
		return 0, false
	}
	k := in.pending[0]
	in.pending = in.pending[1:]
	return k, true
}

type mockAudio struct {
	null      bool
	buzzer    []bool
	frequency float64
	buffer    []uint8
}

func (au *mockAudio) SetFrequency(hz float64) { au.frequency = hz }
func (au *mockAudio) EnableBuzzer(enable bool) { au.buzzer = append(au.buzzer, enable) }
func (au *mockAudio) SetBuffer(buffer []uint8) { au.buffer = append([]uint8{}, buffer...) }
func (au *mockAudio) IsNull() bool { return au.null }

type mockTracer struct {
	live  bool
	trace []string
}

func (tr *mockTracer) IsLive() bool {
	return tr.live
}

func (tr *mockTracer) Output(mc *cpu.CPU, instruction string) {
	tr.trace = append(tr.trace, instruction)
}

func (tr *mockTracer) Debug(mc *cpu.CPU, instruction string, verbose bool) string {
	return "debug info for " + instruction
}

// machine is a CPU with mock collaborators.
type machine struct {
	mc       *cpu.CPU
	mem      *memory.Memory
	stk      *stack.Stack
	fb       *framebuffer.Framebuffer
	renderer *mockRenderer
	inputs   *mockInputs
	audio    *mockAudio
	tracer   *mockTracer
}

// newMachine creates an uncapped CPU for the architecture with the ROM loaded
// at 0x200. The clock should be a Stepping clock if any instruction might
// cause the CPU to busy-wait.
func newMachine(t *testing.T, a arch.Architecture, rom []uint8, clock clocks.Clock, cfg ...func(*cpu.Config)) *machine {
	t.Helper()
	return newMachineWithAudio(t, a, rom, clock, &mockAudio{}, cfg...)
}

// newMachineWithAudio is the same as newMachine but with a specific audio
// implementation.
func newMachineWithAudio(t *testing.T, a arch.Architecture, rom []uint8, clock clocks.Clock, audio *mockAudio, cfg ...func(*cpu.Config)) *machine {
	t.Helper()

	m := &machine{
		mem:      memory.NewMemory(a.MemorySize()),
		stk:      stack.NewStack(a.StackDepth()),
		renderer: &mockRenderer{},
		inputs:   &mockInputs{},
		audio:    audio,
		tracer:   &mockTracer{},
	}

	test.DemandSuccess(t, m.mem.WriteBlock(fonts.SmallOrigin, fonts.Small[:]))
	test.DemandSuccess(t, m.mem.WriteBlock(fonts.BigOrigin, fonts.Big[:]))
	test.DemandSuccess(t, m.mem.WriteBlock(0x200, rom))

	var err error
	m.fb, err = framebuffer.NewFramebuffer(m.renderer, a.Planes(), a.DefaultWrap())
	test.DemandSuccess(t, err)

	if clock == nil {
		clock = &clocks.Stepping{Step: time.Microsecond}
	}

	uncapped := 0
	c := cpu.Config{
		Arch:       a,
		ClockSpeed: &uncapped,
		Seed:       1,
	}
	for _, f := range cfg {
		f(&c)
	}

	m.mc = cpu.NewCPU(c, m.mem, m.stk, m.fb, m.inputs, m.audio, m.tracer, clock)
	m.mc.PC = 0x200

	return m
}

// step the CPU the number of times, demanding success for every step.
func (m *machine) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		quit, err := m.mc.Step()
		test.DemandSuccess(t, err, i)
		test.DemandEquality(t, quit, false, i)
	}
}

// step the CPU until an error occurs or the limit is reached. returns the
// number of steps taken and the error.
func (m *machine) stepUntilError(limit int) (int, error) {
	for i := 1; i <= limit; i++ {
		if _, err := m.mc.Step(); err != nil {
			return i, err
		}
	}
	return limit, nil
}

// blank returns true if no pixel in the frame is set.
func blank(f framebuffer.Frame) bool {
	for _, p := range f.Pixels {
		if p != 0 {
			return false
		}
	}
	return true
}

func equalFrames(a framebuffer.Frame, b framebuffer.Frame) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.Pixels) != len(b.Pixels) {
		return false
	}
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			return false
		}
	}
	return true
}
