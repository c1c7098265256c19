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

package debugger_test

import (
	"strings"
	"testing"
	"time"

	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/debugger"
	"github.com/superchocchip/superchocchip/gui/null"
	"github.com/superchocchip/superchocchip/hardware"
	"github.com/superchocchip/superchocchip/hardware/arch"
	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/test"
)

func newMachine(t *testing.T, a arch.Architecture, dbg *debugger.Debugger, rom []uint8) *hardware.Machine {
	t.Helper()
	g := null.NewGUI()

	var tracer cpu.Tracer
	if dbg != nil {
		tracer = dbg
	}

	m, err := hardware.NewMachine(hardware.Config{
		Arch:  a,
		Clock: &clocks.Stepping{Step: time.Microsecond},
	}, g, g, audio.Null{}, tracer)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.LoadROM(rom))
	m.CPU.PC = hardware.ROMOrigin
	return m
}

func TestDescribe(t *testing.T) {
	st := cpu.State{
		Arch:    arch.CHIP8,
		I:       0x0123,
		DT:      0x3c,
		ST:      0x01,
		DebugPC: 0x204,
		Opcode:  0x6a05,
	}
	st.V[0] = 0x01
	st.V[15] = 0xff

	s := debugger.Describe(st, "LD Va, 0x05", false)
	test.ExpectEquality(t, s, "V: 0xff000000000000000000000000000001 I: 0x0123 DT: 0x3c DS: 0x01 PC: 0x204 OP: 0x6a05 IN: LD Va, 0x05")

	// verbose output for CHIP-8 does not include the RPL registers
	s = debugger.Describe(st, "LD Va, 0x05", true)
	lines := strings.Split(s, "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[1], "Stack: (Empty)")

	st.Arch = arch.SCHIP10
	st.RPL[1] = 0xab
	st.Stack = []uint16{0x202, 0x30a}
	s = debugger.Describe(st, "???", true)
	lines = strings.Split(s, "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[1], "RPL: 0x0000000000000000000000000000ab00")
	test.ExpectEquality(t, lines[2], "Stack: 0x202 0x30a")
}

func TestLiveOutput(t *testing.T) {
	w := &test.CompareWriter{}
	dbg := debugger.NewDebugger(w)
	test.ExpectFailure(t, dbg.IsLive())

	m := newMachine(t, arch.CHIP8, dbg, []uint8{0x60, 0x05, 0x61, 0x06, 0x12, 0x04})

	// nothing is output until the debugger is live
	_, err := m.CPU.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "")

	dbg.SetLive(true)
	test.ExpectSuccess(t, dbg.IsLive())
	_, err = m.CPU.Step()
	test.DemandSuccess(t, err)

	// the line describes the state before the instruction is executed
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 1)
	test.ExpectEquality(t, lines[0], "V: 0x00000000000000000000000000000005 I: 0x0000 DT: 0x00 DS: 0x00 PC: 0x202 OP: 0x6106 IN: LD V1, 0x06")

	dbg.SetLive(false)
	_, err = m.CPU.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(w.Lines()), 1)
}

func TestLongRunningTrace(t *testing.T) {
	// only the start of the trace is kept
	w, err := test.NewCappedWriter(1024)
	test.DemandSuccess(t, err)

	dbg := debugger.NewDebugger(w)
	dbg.SetLive(true)

	// uncapped loop. LD V0, 0x05 then JP 0x200
	m := newMachine(t, arch.SCHIP10, dbg, []uint8{0x60, 0x05, 0x12, 0x00})
	for i := 0; i < 1000; i++ {
		_, err = m.CPU.Step()
		test.DemandSuccess(t, err, i)
	}

	test.ExpectSuccess(t, w.Full())
	test.ExpectSuccess(t, strings.HasPrefix(w.String(),
		"V: 0x00000000000000000000000000000000 I: 0x0000 DT: 0x00 DS: 0x00 PC: 0x200 OP: 0x6005 IN: LD V0, 0x05\n"))
}

func TestFaultDiagnostic(t *testing.T) {
	dbg := debugger.NewDebugger(nil)
	m := newMachine(t, arch.SCHIP11, dbg, []uint8{0x22, 0x04, 0x00, 0x00, 0xf0, 0x00})

	var err error
	for i := 0; i < 4 && err == nil; i++ {
		_, err = m.CPU.Step()
	}
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedOpcode))

	s := err.Error()
	test.ExpectSuccess(t, strings.Contains(s, "OP: 0xf000 IN: ???"))
	test.ExpectSuccess(t, strings.Contains(s, "RPL: 0x"))
	test.ExpectSuccess(t, strings.Contains(s, "Stack: 0x202"))
}

func TestMemviz(t *testing.T) {
	m := newMachine(t, arch.XOCHIP, nil, []uint8{0x60, 0x05})
	_, err := m.CPU.Step()
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	debugger.DumpMemviz(w, m.CPU)
	test.ExpectSuccess(t, w.Contains("digraph"))
	test.ExpectSuccess(t, w.Contains("DebugPC"))
}
