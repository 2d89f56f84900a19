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

// Package display implements the 64x32 monochrome framebuffer and the sprite
// drawing algorithm.
//
// Sprites are drawn by XORing each bit of the sprite onto the framebuffer.
// Coordinates wrap around the edges of the framebuffer in both directions. A
// sprite that turns off a pixel that was on is said to have collided and the
// DrawSprite() function returns true.
//
// The framebuffer is passed to PixelRenderer implementations as a Frame. The
// Frame is a copy of the framebuffer and can be kept by the renderer for as
// long as it likes.
package display
