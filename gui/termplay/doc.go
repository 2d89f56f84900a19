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

// Package termplay plays CHIP-8 programs in an ANSI terminal. Each character
// cell shows two CHIP-8 pixels, one above the other, using the Unicode half
// block characters. The terminal must be at least 64 columns wide and 17
// rows high.
//
// Terminals do not report key releases. A key is released automatically if no
// further key press for that key has been seen for a short time. Holding a
// key down relies on the terminal's key repeat to keep the key pressed.
package termplay
