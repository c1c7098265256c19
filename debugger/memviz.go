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
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/logger"
)

// MemvizError is the pattern used for errors raised when writing a memviz
// file.
const MemvizError = "memviz: %v"

// DumpMemviz writes a Graphviz description of the CPU state.
func DumpMemviz(w io.Writer, mc *cpu.CPU) {
	st := mc.State()
	memviz.Map(w, &st)
}

// DumpMemvizFile is the same as DumpMemviz() but writes to the named file. An
// existing file will be overwritten.
func DumpMemvizFile(filename string, mc *cpu.CPU) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}

	DumpMemviz(f, mc)

	err = f.Close()
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}

	logger.Logf(logger.Allow, "memviz", "machine state written to %s", filename)

	return nil
}
