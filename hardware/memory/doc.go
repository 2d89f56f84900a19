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

// Package memory implements the 4096 bytes of memory available to a CHIP-8
// program.
//
// The first 512 bytes are reserved. The font glyphs for the hexadecimal digits
// 0 to F are stored at the very start of memory, five bytes per glyph.
// Programs are loaded at address 0x200 and may occupy the rest of memory.
//
// All accesses are bounds checked. An address outside of the memory range
// results in a curated error with the cpubus.AddressError pattern.
package memory
