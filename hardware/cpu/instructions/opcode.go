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

package instructions

import "fmt"

// Opcode is a 16 bit instruction word as fetched from memory. The functions
// extract the operand fields.
//
//	XNNN
//	_XY_
//	__KK
//	___N
type Opcode uint16

func (o Opcode) String() string {
	return fmt.Sprintf("%04x", uint16(o))
}

// X returns the register index in the second nibble.
func (o Opcode) X() int {
	return int(o>>8) & 0x0f
}

// Y returns the register index in the third nibble.
func (o Opcode) Y() int {
	return int(o>>4) & 0x0f
}

// N returns the lowest nibble.
func (o Opcode) N() uint8 {
	return uint8(o) & 0x0f
}

// KK returns the lowest byte.
func (o Opcode) KK() uint8 {
	return uint8(o)
}

// NNN returns the lowest twelve bits.
func (o Opcode) NNN() uint16 {
	return uint16(o) & 0x0fff
}
