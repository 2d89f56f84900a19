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

package display

// PixelRenderer implementations receive the framebuffer once per frame.
type PixelRenderer interface {
	// Render is called at the end of every frame. The frame number counts
	// from zero from when the machine was last reset.
	Render(frameNum int, frame Frame) error

	// EndRendering is called when the emulation has finished and no more
	// frames will be sent.
	EndRendering() error
}
