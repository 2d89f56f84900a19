// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"
	"strings"
)

// StackCapacity is the maximum number of return addresses on the stack.
const StackCapacity = 16

// Stack of return addresses used by the call and return instructions.
type Stack struct {
	entries [StackCapacity]uint16
	depth   int
}

func (s *Stack) String() string {
	if s.depth == 0 {
		return "SP=0 []"
	}
	e := make([]string, s.depth)
	for i := 0; i < s.depth; i++ {
		e[i] = fmt.Sprintf("%03x", s.entries[i])
	}
	return fmt.Sprintf("SP=%d [%s]", s.depth, strings.Join(e, " "))
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.depth = 0
}

// Depth returns the number of entries on the stack.
func (s *Stack) Depth() int {
	return s.depth
}

// Push address onto the stack. Returns false if the stack is full, in which
// case the address has not been pushed.
func (s *Stack) Push(address uint16) bool {
	if s.depth >= StackCapacity {
		return false
	}
	s.entries[s.depth] = address
	s.depth++
	return true
}

// Pop address from the stack. Returns false if the stack is empty.
func (s *Stack) Pop() (uint16, bool) {
	if s.depth == 0 {
		return 0, false
	}
	s.depth--
	return s.entries[s.depth], true
}
