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
	"fmt"
	"strings"
	"time"

	"github.com/superchocchip/superchocchip/hardware/arch"
	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/hardware/fonts"
	"github.com/superchocchip/superchocchip/hardware/framebuffer"
	"github.com/superchocchip/superchocchip/hardware/memory"
	"github.com/superchocchip/superchocchip/hardware/stack"
	"github.com/superchocchip/superchocchip/random"
)

// Error patterns for faults raised by the CPU.
const (
	UnsupportedOpcode = "unsupported opcode: %s"
	UnsupportedScroll = "unsupported scroll: %s"
)

// Inputs is the interface to the host's keyboard.
type Inputs interface {
	// ProcessMessages is called once per display frame. It returns true if
	// the user has asked to quit.
	ProcessMessages() bool

	// IsKeyDown returns true if the CHIP-8 key (0 to 15) is currently pressed.
	IsKeyDown(key uint8) bool

	// SetupKeypress forgets any keys that are currently pressed, in
	// preparation for calls to GetKeypress().
	SetupKeypress()

	// GetKeypress returns the key that has been pressed since the last call to
	// SetupKeypress(). The ok value is false if no key has been pressed.
	GetKeypress() (key uint8, ok bool)
}

// Audio is the interface to the host's sound output.
type Audio interface {
	// SetFrequency sets the playback rate of the waveform in samples per
	// second.
	SetFrequency(hz float64)

	// EnableBuzzer starts or stops the playback of the waveform.
	EnableBuzzer(enable bool)

	// SetBuffer sets the waveform. Each bit of the 16 bytes is one sample.
	// The buffer may be shorter than 16 bytes if it was read from the very end
	// of memory.
	SetBuffer(buffer []uint8)

	// IsNull returns true if the implementation makes no sound. The XO-CHIP
	// audio instructions do nothing if this is true.
	IsNull() bool
}

// Tracer is the interface to the debugger. It never changes the behaviour of
// the CPU.
type Tracer interface {
	// IsLive returns true if Output() should be called for every instruction.
	IsLive() bool

	// Output a trace line for the instruction that is about to be executed.
	Output(mc *CPU, instruction string)

	// Debug returns a description of the CPU state. The verbose flag adds the
	// RPL registers and the stack.
	Debug(mc *CPU, instruction string, verbose bool) string
}

// Config is used to create a new CPU.
type Config struct {
	Arch arch.Architecture

	// instructions per second. nil means the default speed for the
	// architecture. zero means uncapped
	ClockSpeed *int

	// explicit quirk values. nil fields use the architecture default
	Quirks arch.Overrides

	// seed for the random number instruction. zero means a random seed
	Seed int64
}

// the frequency of the display and the timers.
const (
	displayFrequency = 60
	displayInterval  = time.Second / displayFrequency
	timerFrequency   = 60
)

// CPU is the CHIP-8 family interpreter.
type CPU struct {
	Arch arch.Architecture

	// resolved quirks. these should not be changed once the CPU has started
	// running but tests are free to change them beforehand
	Quirks arch.Quirks

	V       [16]uint8
	I       uint16
	PC      uint16
	DT      uint8
	ST      uint8
	RPL     [16]uint8
	Opcode  uint16
	DebugPC uint16

	mem    *memory.Memory
	stack  *stack.Stack
	fb     *framebuffer.Framebuffer
	inputs Inputs
	audio  Audio
	tracer Tracer
	clock  clocks.Clock
	random *random.Random

	// audio instructions are ignored if audio is null
	audioNull bool

	// mask applied to the index register after every update
	addrMask uint16

	// the time between instructions. zero if the clock is uncapped
	coreInterval time.Duration

	// the time at the start of the current cycle
	thisTime time.Duration

	// timer deadlines
	dtTarget time.Duration
	stTarget time.Duration

	loRes            bool
	vblankWait       bool
	awaitingKeypress bool

	nextDisplayUpdate time.Duration
	nextPerfReport    time.Duration
	fps               int
	ops               int

	// instruction tables. see dispatch.go
	coarse    [16]func() error
	secondary map[uint16]func() error
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// main memory, stack and framebuffer should have been created according to
// the requirements of the architecture. The tracer may be nil. If the clock
// is nil then a monotonic clock is used.
func NewCPU(cfg Config, mem *memory.Memory, stk *stack.Stack, fb *framebuffer.Framebuffer,
	inputs Inputs, audio Audio, tracer Tracer, clock clocks.Clock) *CPU {

	if clock == nil {
		clock = clocks.NewMonotonic()
	}

	mc := &CPU{
		Arch:      cfg.Arch,
		Quirks:    cfg.Arch.DefaultQuirks().Override(cfg.Quirks),
		mem:       mem,
		stack:     stk,
		fb:        fb,
		inputs:    inputs,
		audio:     audio,
		tracer:    tracer,
		clock:     clock,
		random:    random.NewRandom(cfg.Seed),
		audioNull: audio.IsNull(),
		addrMask:  cfg.Arch.AddressMask(),
	}

	speed := cfg.Arch.DefaultClockSpeed()
	if cfg.ClockSpeed != nil {
		speed = *cfg.ClockSpeed
	}
	if speed > 0 {
		mc.coreInterval = time.Second / time.Duration(speed)
	}

	mc.buildInstructionTable()

	mc.fb.ReportPerf(0, 0)
	mc.fb.ResizeVid(64, 32)
	mc.loRes = true

	return mc
}

// ClockSpeed returns the number of instructions per second. Zero means the
// CPU is uncapped.
func (mc *CPU) ClockSpeed() int {
	if mc.coreInterval == 0 {
		return 0
	}
	return int(time.Second / mc.coreInterval)
}

// LoRes returns true if the CPU is in the low resolution (64x32) mode.
func (mc *CPU) LoRes() bool {
	return mc.loRes
}

// AwaitingKeypress returns true if the CPU is waiting for a key press.
func (mc *CPU) AwaitingKeypress() bool {
	return mc.awaitingKeypress
}

// Stack returns the contents of the call stack.
func (mc *CPU) Stack() []uint16 {
	return mc.stack.Items()
}

// Memory returns the main memory of the CPU.
func (mc *CPU) Memory() *memory.Memory {
	return mc.mem
}

// Framebuffer returns the framebuffer attached to the CPU.
func (mc *CPU) Framebuffer() *framebuffer.Framebuffer {
	return mc.fb
}

// Fetch returns the 16-bit word at the program counter. The second byte of a
// word at 0x0fff is read from 0x1000 if memory extends that far.
func (mc *CPU) Fetch() uint16 {
	next := int(mc.PC) + 1
	if mc.Arch < arch.XOCHIP {
		next &= 0x0fff
	}
	return uint16(mc.mem.Read(int(mc.PC)))<<8 | uint16(mc.mem.Read(next))
}

// IncPC advances the program counter by one instruction.
func (mc *CPU) IncPC() {
	mc.PC = (mc.PC + 2) & 0x0fff
}

// DecPC moves the program counter back by one instruction. This is used to
// repeat an instruction.
func (mc *CPU) DecPC() {
	mc.PC = (mc.PC - 2) & 0x0fff
}

// State is a copy of the CPU registers.
type State struct {
	Arch    arch.Architecture
	Quirks  arch.Quirks
	V       [16]uint8
	I       uint16
	PC      uint16
	DT      uint8
	ST      uint8
	RPL     [16]uint8
	Opcode  uint16
	DebugPC uint16
	Stack   []uint16
	LoRes   bool
}

// State returns a copy of the current CPU state.
func (mc *CPU) State() State {
	return State{
		Arch:    mc.Arch,
		Quirks:  mc.Quirks,
		V:       mc.V,
		I:       mc.I,
		PC:      mc.PC,
		DT:      mc.DT,
		ST:      mc.ST,
		RPL:     mc.RPL,
		Opcode:  mc.Opcode,
		DebugPC: mc.DebugPC,
		Stack:   mc.stack.Items(),
		LoRes:   mc.loRes,
	}
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString("V:")
	for _, v := range mc.V {
		fmt.Fprintf(&s, " %02x", v)
	}
	fmt.Fprintf(&s, " I=%04x PC=%03x DT=%02x ST=%02x", mc.I, mc.PC, mc.DT, mc.ST)
	return s.String()
}

// location of the font glyph for the digit.
func smallGlyph(digit uint8) uint16 {
	return uint16(fonts.SmallOrigin + fonts.SmallHeight*int(digit))
}

func bigGlyph(digit uint8) uint16 {
	return uint16(fonts.BigOrigin + fonts.BigHeight*int(digit))
}
