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

// Package cpu emulates the CHIP-8 CPU.
//
// The ExecuteInstruction() function fetches, decodes and executes a single
// instruction. Every instruction is two bytes long and the program counter is
// advanced by two after every instruction, including those that change the
// program counter. Jumps and calls therefore load the program counter with
// the target address minus two.
//
// Instructions that set the flag register VF write the flag before writing
// the result. When the destination register is VF the result is what remains.
//
// The FX0A instruction does not block. Instead, the CPU enters the
// AwaitingKey state. While in that state ExecuteInstruction() does nothing
// except check for a key press. Timers and rendering, which are driven by the
// hardware package, are unaffected.
//
// Values used as an index into memory, the register bank or the keypad are
// bounds checked and never masked or clamped. An out of range index is
// returned as an error and should be treated as fatal. EX9E and EXA1 index
// the keypad with Vx, so a Vx greater than 0xF is fatal: the program is
// reading a key that does not exist and there is no correct key to test
// instead.
//
// FX29 is different because Vx is a hexadecimal digit and not an index. Only
// the low nibble of Vx is a digit, so the upper nibble is ignored.
//
// Words that do not decode to an instruction are logged and skipped over.
package cpu
