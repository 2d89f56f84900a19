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

// Package preferences contains the preference values for the emulated
// hardware. The values are stored on disk in the global preferences file
// under the "hardware" namespace:
//
//	hardware.cyclesPerFrame   instructions executed every frame (default 4)
//	hardware.random.mode      AND or MODULUS (default AND)
//	hardware.fps              frame rate when the limiter is active (default 60)
//	hardware.randstate        randomise data registers on reset (default false)
package preferences
