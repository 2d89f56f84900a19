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

// Package keypad implements the sixteen key hexadecimal keypad.
//
// Keys are pressed and released by the input collaborator through the
// KeyDown() and KeyUp() functions. The CPU reads the state of a key with
// IsPressed().
//
// The keypad also remembers the most recent key to go from up to down. This
// is used by the instruction that waits for a key press. The pending press is
// consumed by TakePress() and can be discarded with ClearPress().
package keypad
