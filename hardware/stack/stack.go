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

// Package stack implements the call stack of the emulated CPU. The stack is
// not part of addressable memory and there is no stack pointer visible to the
// running program.
package stack

import (
	"fmt"
	"strings"

	"github.com/superchocchip/superchocchip/curated"
)

// StackFault is the pattern used for errors raised by the Stack type.
const StackFault = "stack fault: %s"

// Stack is a bounded list of return addresses.
type Stack struct {
	items    []uint16
	capacity int
}

// NewStack is the preferred method of initialisation for the Stack type.
func NewStack(capacity int) *Stack {
	return &Stack{
		items:    make([]uint16, 0, capacity),
		capacity: capacity,
	}
}

// Push address onto the stack.
func (stk *Stack) Push(addr uint16) error {
	if len(stk.items) >= stk.capacity {
		return curated.Errorf(StackFault, "overflow")
	}
	stk.items = append(stk.items, addr)
	return nil
}

// Pop the most recently pushed address.
func (stk *Stack) Pop() (uint16, error) {
	if len(stk.items) == 0 {
		return 0, curated.Errorf(StackFault, "underflow")
	}
	addr := stk.items[len(stk.items)-1]
	stk.items = stk.items[:len(stk.items)-1]
	return addr, nil
}

// Items returns the contents of the stack in the order they were pushed. The
// returned slice is a copy.
func (stk *Stack) Items() []uint16 {
	c := make([]uint16, len(stk.items))
	copy(c, stk.items)
	return c
}

// Len returns the number of items on the stack.
func (stk *Stack) Len() int {
	return len(stk.items)
}

// Capacity returns the maximum number of items the stack can hold.
func (stk *Stack) Capacity() int {
	return stk.capacity
}

// Reset empties the stack.
func (stk *Stack) Reset() {
	stk.items = stk.items[:0]
}

func (stk *Stack) String() string {
	if len(stk.items) == 0 {
		return "(Empty)"
	}
	s := make([]string, len(stk.items))
	for i, a := range stk.items {
		s[i] = fmt.Sprintf("0x%03x", a)
	}
	return strings.Join(s, " ")
}
