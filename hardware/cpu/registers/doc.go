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

// Package registers implements the registers of the CHIP-8 CPU.
//
// The sixteen data registers V0 to VF are 8 bits wide. VF is also used as the
// flag register by some instructions but is otherwise an ordinary register.
//
// The arithmetic functions of the Register type return the value that the
// instruction should write to VF. They do not write the flag themselves. The
// CPU decides the order in which the flag and result are written.
//
// The index register I and the program counter are 16 bits wide. The stack
// holds up to sixteen return addresses.
package registers
