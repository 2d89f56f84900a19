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

import (
	"fmt"
	"strings"
)

// Definition defines each instruction in the instruction set.
type Definition struct {
	// the canonical form of the instruction. for example, 8XY4
	Form string

	Mask    uint16
	Pattern uint16

	Operator Operator

	// assembler representation of the instruction. operands use the
	// placeholders in the canonical form
	Mnemonic string
	Operands string

	Effect Category
}

func (defn Definition) String() string {
	if defn.Operands == "" {
		return fmt.Sprintf("%s %s", defn.Form, defn.Mnemonic)
	}
	return fmt.Sprintf("%s %s %s", defn.Form, defn.Mnemonic, defn.Operands)
}

// Matches returns true if the opcode is an instance of the definition.
func (defn Definition) Matches(opcode Opcode) bool {
	return uint16(opcode)&defn.Mask == defn.Pattern
}

// Disassemble returns the mnemonic and operands for the opcode, with the
// placeholders replaced by the values in the opcode.
func (defn Definition) Disassemble(opcode Opcode) string {
	if defn.Operands == "" {
		return defn.Mnemonic
	}
	r := strings.NewReplacer(
		"NNN", fmt.Sprintf("%03x", opcode.NNN()),
		"KK", fmt.Sprintf("%02x", opcode.KK()),
		"Vx", fmt.Sprintf("V%X", opcode.X()),
		"Vy", fmt.Sprintf("V%X", opcode.Y()),
		"N", fmt.Sprintf("%x", opcode.N()),
	)
	return fmt.Sprintf("%s %s", defn.Mnemonic, r.Replace(defn.Operands))
}

// UnknownDefinition is returned by Decode() when no other definition matches.
var UnknownDefinition = &Definition{
	Form:     "????",
	Operator: Unknown,
	Mnemonic: "???",
	Effect:   Read,
}

// Definitions is the table of instructions, ordered from the most specific
// mask to the least specific.
var Definitions = [...]Definition{
	{Form: "00E0", Mask: 0xffff, Pattern: 0x00e0, Operator: Cls, Mnemonic: "CLS", Effect: Display},
	{Form: "00EE", Mask: 0xffff, Pattern: 0x00ee, Operator: Ret, Mnemonic: "RET", Effect: Subroutine},

	{Form: "5XY0", Mask: 0xf00f, Pattern: 0x5000, Operator: SeReg, Mnemonic: "SE", Operands: "Vx, Vy", Effect: Flow},
	{Form: "8XY0", Mask: 0xf00f, Pattern: 0x8000, Operator: LdReg, Mnemonic: "LD", Operands: "Vx, Vy", Effect: Write},
	{Form: "8XY1", Mask: 0xf00f, Pattern: 0x8001, Operator: Or, Mnemonic: "OR", Operands: "Vx, Vy", Effect: Modify},
	{Form: "8XY2", Mask: 0xf00f, Pattern: 0x8002, Operator: And, Mnemonic: "AND", Operands: "Vx, Vy", Effect: Modify},
	{Form: "8XY3", Mask: 0xf00f, Pattern: 0x8003, Operator: Xor, Mnemonic: "XOR", Operands: "Vx, Vy", Effect: Modify},
	{Form: "8XY4", Mask: 0xf00f, Pattern: 0x8004, Operator: AddReg, Mnemonic: "ADD", Operands: "Vx, Vy", Effect: Modify},
	{Form: "8XY5", Mask: 0xf00f, Pattern: 0x8005, Operator: Sub, Mnemonic: "SUB", Operands: "Vx, Vy", Effect: Modify},
	{Form: "8XY6", Mask: 0xf00f, Pattern: 0x8006, Operator: Shr, Mnemonic: "SHR", Operands: "Vx", Effect: Modify},
	{Form: "8XY7", Mask: 0xf00f, Pattern: 0x8007, Operator: Subn, Mnemonic: "SUBN", Operands: "Vx, Vy", Effect: Modify},
	{Form: "8XYE", Mask: 0xf00f, Pattern: 0x800e, Operator: Shl, Mnemonic: "SHL", Operands: "Vx", Effect: Modify},
	{Form: "9XY0", Mask: 0xf00f, Pattern: 0x9000, Operator: SneReg, Mnemonic: "SNE", Operands: "Vx, Vy", Effect: Flow},

	{Form: "EX9E", Mask: 0xf0ff, Pattern: 0xe09e, Operator: Skp, Mnemonic: "SKP", Operands: "Vx", Effect: Input},
	{Form: "EXA1", Mask: 0xf0ff, Pattern: 0xe0a1, Operator: Sknp, Mnemonic: "SKNP", Operands: "Vx", Effect: Input},
	{Form: "FX07", Mask: 0xf0ff, Pattern: 0xf007, Operator: LdFromDT, Mnemonic: "LD", Operands: "Vx, DT", Effect: Timer},
	{Form: "FX0A", Mask: 0xf0ff, Pattern: 0xf00a, Operator: LdKey, Mnemonic: "LD", Operands: "Vx, K", Effect: Input},
	{Form: "FX15", Mask: 0xf0ff, Pattern: 0xf015, Operator: LdToDT, Mnemonic: "LD", Operands: "DT, Vx", Effect: Timer},
	{Form: "FX18", Mask: 0xf0ff, Pattern: 0xf018, Operator: LdToST, Mnemonic: "LD", Operands: "ST, Vx", Effect: Timer},
	{Form: "FX1E", Mask: 0xf0ff, Pattern: 0xf01e, Operator: AddI, Mnemonic: "ADD", Operands: "I, Vx", Effect: Modify},
	{Form: "FX29", Mask: 0xf0ff, Pattern: 0xf029, Operator: LdFont, Mnemonic: "LD", Operands: "F, Vx", Effect: Write},
	{Form: "FX33", Mask: 0xf0ff, Pattern: 0xf033, Operator: LdBCD, Mnemonic: "LD", Operands: "B, Vx", Effect: Write},
	{Form: "FX55", Mask: 0xf0ff, Pattern: 0xf055, Operator: LdDump, Mnemonic: "LD", Operands: "[I], Vx", Effect: Write},
	{Form: "FX65", Mask: 0xf0ff, Pattern: 0xf065, Operator: LdLoad, Mnemonic: "LD", Operands: "Vx, [I]", Effect: Read},

	{Form: "1NNN", Mask: 0xf000, Pattern: 0x1000, Operator: Jp, Mnemonic: "JP", Operands: "NNN", Effect: Flow},
	{Form: "2NNN", Mask: 0xf000, Pattern: 0x2000, Operator: Call, Mnemonic: "CALL", Operands: "NNN", Effect: Subroutine},
	{Form: "3XKK", Mask: 0xf000, Pattern: 0x3000, Operator: SeByte, Mnemonic: "SE", Operands: "Vx, KK", Effect: Flow},
	{Form: "4XKK", Mask: 0xf000, Pattern: 0x4000, Operator: SneByte, Mnemonic: "SNE", Operands: "Vx, KK", Effect: Flow},
	{Form: "6XKK", Mask: 0xf000, Pattern: 0x6000, Operator: LdByte, Mnemonic: "LD", Operands: "Vx, KK", Effect: Write},
	{Form: "7XKK", Mask: 0xf000, Pattern: 0x7000, Operator: AddByte, Mnemonic: "ADD", Operands: "Vx, KK", Effect: Modify},
	{Form: "ANNN", Mask: 0xf000, Pattern: 0xa000, Operator: LdI, Mnemonic: "LD", Operands: "I, NNN", Effect: Write},
	{Form: "BNNN", Mask: 0xf000, Pattern: 0xb000, Operator: JpV0, Mnemonic: "JP", Operands: "V0, NNN", Effect: Flow},
	{Form: "CXKK", Mask: 0xf000, Pattern: 0xc000, Operator: Rnd, Mnemonic: "RND", Operands: "Vx, KK", Effect: Write},
	{Form: "DXYN", Mask: 0xf000, Pattern: 0xd000, Operator: Drw, Mnemonic: "DRW", Operands: "Vx, Vy, N", Effect: Display},

	{Form: "0NNN", Mask: 0xf000, Pattern: 0x0000, Operator: Sys, Mnemonic: "SYS", Operands: "NNN", Effect: Flow},
}

// Decode returns the first definition in the table that matches the opcode.
// Returns UnknownDefinition if there is no match.
func Decode(opcode Opcode) *Definition {
	for i := range Definitions {
		if Definitions[i].Matches(opcode) {
			return &Definitions[i]
		}
	}
	return UnknownDefinition
}
