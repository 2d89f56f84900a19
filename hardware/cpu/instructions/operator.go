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

// Operator identifies the action to be taken by the CPU for an instruction.
type Operator int

// List of valid Operator values. Names loosely follow the conventional
// assembler mnemonics with the operand types appended where the mnemonic is
// shared by more than one instruction.
const (
	Unknown Operator = iota
	Cls
	Ret
	Sys
	Jp
	Call
	SeByte
	SneByte
	SeReg
	LdByte
	AddByte
	LdReg
	Or
	And
	Xor
	AddReg
	Sub
	Shr
	Subn
	Shl
	SneReg
	LdI
	JpV0
	Rnd
	Drw
	Skp
	Sknp
	LdFromDT
	LdKey
	LdToDT
	LdToST
	AddI
	LdFont
	LdBCD
	LdDump
	LdLoad
)

var operatorNames = [...]string{
	"Unknown",
	"Cls",
	"Ret",
	"Sys",
	"Jp",
	"Call",
	"SeByte",
	"SneByte",
	"SeReg",
	"LdByte",
	"AddByte",
	"LdReg",
	"Or",
	"And",
	"Xor",
	"AddReg",
	"Sub",
	"Shr",
	"Subn",
	"Shl",
	"SneReg",
	"LdI",
	"JpV0",
	"Rnd",
	"Drw",
	"Skp",
	"Sknp",
	"LdFromDT",
	"LdKey",
	"LdToDT",
	"LdToST",
	"AddI",
	"LdFont",
	"LdBCD",
	"LdDump",
	"LdLoad",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "Unknown"
	}
	return operatorNames[op]
}
