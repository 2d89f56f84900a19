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

// Package instructions defines the CHIP-8 instruction set.
//
// The Definitions table lists every instruction as a mask and pattern pair.
// An instruction word matches a definition if the word ANDed with the mask
// equals the pattern. The table is ordered so that definitions with the more
// specific masks come first. The Decode() function returns the first matching
// definition.
//
// The last definition in the table is the 0NNN system call. Because its mask
// only considers the top nibble it would shadow 00E0 and 00EE if it were any
// earlier in the table.
//
// Words that match no definition decode to the Unknown definition.
package instructions
