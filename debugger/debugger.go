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

package debugger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/superchocchip/superchocchip/hardware/arch"
	"github.com/superchocchip/superchocchip/hardware/cpu"
)

// Debugger implements the cpu.Tracer interface.
type Debugger struct {
	crit sync.Mutex

	live   bool
	output io.Writer
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. Trace lines are written to output. The debugger is not live until
// SetLive(true) is called.
func NewDebugger(output io.Writer) *Debugger {
	return &Debugger{
		output: output,
	}
}

// SetLive enables or disables the output of trace lines.
func (dbg *Debugger) SetLive(live bool) {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	dbg.live = live
}

// IsLive implements the cpu.Tracer interface.
func (dbg *Debugger) IsLive() bool {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.live
}

// Output implements the cpu.Tracer interface.
func (dbg *Debugger) Output(mc *cpu.CPU, instruction string) {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	if dbg.output == nil {
		return
	}
	_, _ = io.WriteString(dbg.output, dbg.Debug(mc, instruction, false))
	_, _ = io.WriteString(dbg.output, "\n")
}

// Debug implements the cpu.Tracer interface.
func (dbg *Debugger) Debug(mc *cpu.CPU, instruction string, verbose bool) string {
	return Describe(mc.State(), instruction, verbose)
}

// Describe returns the trace line for the CPU state. The verbose form spans
// more than one line.
func Describe(st cpu.State, instruction string, verbose bool) string {
	s := strings.Builder{}

	s.WriteString("V: 0x")
	writeRegisters(&s, st.V)
	s.WriteString(fmt.Sprintf(" I: 0x%04x DT: 0x%02x DS: 0x%02x PC: 0x%03x OP: 0x%04x IN: %s",
		st.I, st.DT, st.ST, st.DebugPC, st.Opcode, instruction))

	if !verbose {
		return s.String()
	}

	if st.Arch >= arch.SCHIP10 {
		s.WriteString("\nRPL: 0x")
		writeRegisters(&s, st.RPL)
	}

	s.WriteString("\nStack:")
	if len(st.Stack) == 0 {
		s.WriteString(" (Empty)")
	}
	for _, a := range st.Stack {
		s.WriteString(fmt.Sprintf(" 0x%03x", a))
	}

	return s.String()
}

// registers are written most significant first
func writeRegisters(s *strings.Builder, r [16]uint8) {
	for i := len(r) - 1; i >= 0; i-- {
		s.WriteString(fmt.Sprintf("%02x", r[i]))
	}
}
