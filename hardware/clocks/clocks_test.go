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

package clocks_test

import (
	"testing"
	"time"

	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/test"
)

func TestMonotonic(t *testing.T) {
	clk := clocks.NewMonotonic()
	a := clk.Now()
	b := clk.Now()
	test.ExpectSuccess(t, b >= a)
}

func TestFake(t *testing.T) {
	var clk clocks.Fake
	test.ExpectEquality(t, clk.Now(), 0)

	clk.Advance(time.Second)
	test.ExpectEquality(t, clk.Now(), time.Second)

	clk.Set(3 * time.Second)
	test.ExpectEquality(t, clk.Now(), 3*time.Second)

	// clock does not go backwards
	clk.Set(time.Second)
	test.ExpectEquality(t, clk.Now(), 3*time.Second)
}

func TestStepping(t *testing.T) {
	clk := clocks.Stepping{Step: time.Millisecond}
	test.ExpectEquality(t, clk.Now(), time.Millisecond)
	test.ExpectEquality(t, clk.Now(), 2*time.Millisecond)

	clk.Advance(time.Second)
	test.ExpectEquality(t, clk.Now(), time.Second+3*time.Millisecond)
}
