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

package stack_test

import (
	"testing"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/hardware/stack"
	"github.com/superchocchip/superchocchip/test"
)

func TestRoundTrip(t *testing.T) {
	stk := stack.NewStack(16)
	test.ExpectEquality(t, stk.String(), "(Empty)")

	for i := range 16 {
		test.ExpectSuccess(t, stk.Push(uint16(0x200+i*2)))
	}
	test.ExpectEquality(t, stk.Len(), 16)
	test.DemandEquality(t, len(stk.Items()), 16)
	test.ExpectEquality(t, stk.Items()[0], 0x200)

	for i := 15; i >= 0; i-- {
		addr, err := stk.Pop()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, addr, uint16(0x200+i*2))
	}
	test.ExpectEquality(t, stk.Len(), 0)
}

func TestOverflow(t *testing.T) {
	for _, capacity := range []int{12, 16} {
		stk := stack.NewStack(capacity)
		for range capacity {
			test.DemandSuccess(t, stk.Push(0x202))
		}
		err := stk.Push(0x202)
		test.ExpectFailure(t, err, capacity)
		test.ExpectSuccess(t, curated.Is(err, stack.StackFault), capacity)
		test.ExpectEquality(t, err.Error(), "stack fault: overflow")
		test.ExpectEquality(t, stk.Len(), capacity)
	}
}

func TestUnderflow(t *testing.T) {
	stk := stack.NewStack(12)
	_, err := stk.Pop()
	test.ExpectSuccess(t, curated.Is(err, stack.StackFault))
	test.ExpectEquality(t, err.Error(), "stack fault: underflow")

	test.DemandSuccess(t, stk.Push(0x300))
	test.DemandSuccess(t, stk.Push(0x400))
	test.ExpectEquality(t, stk.String(), "0x300 0x400")

	stk.Reset()
	_, err = stk.Pop()
	test.ExpectFailure(t, err)
}
