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

import (
	"strings"
)

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// Frame is a read-only copy of the framebuffer.
type Frame struct {
	pixels [Height][Width]bool
}

// Width returns the number of pixels in each row of the frame.
func (f Frame) Width() int {
	return Width
}

// Height returns the number of rows in the frame.
func (f Frame) Height() int {
	return Height
}

// Pixel returns the state of the pixel at x, y. Coordinates outside of the
// frame are always off.
func (f Frame) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f.pixels[y][x]
}

// String returns the frame as rows of text. An on pixel is shown with a '#'
// character.
func (f Frame) String() string {
	s := strings.Builder{}
	for y := range f.pixels {
		for x := range f.pixels[y] {
			if f.pixels[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Bytes returns the frame packed into bytes, one bit per pixel, MSB first.
// Useful for hashing.
func (f Frame) Bytes() []byte {
	b := make([]byte, Width*Height/8)
	for y := range f.pixels {
		for x := range f.pixels[y] {
			if f.pixels[y][x] {
				i := y*Width + x
				b[i/8] |= 0x80 >> (i % 8)
			}
		}
	}
	return b
}

// Framebuffer is the display memory of the machine.
type Framebuffer struct {
	frame Frame
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

func (fb *Framebuffer) String() string {
	return fb.frame.String()
}

// Clear turns off every pixel.
func (fb *Framebuffer) Clear() {
	fb.frame = Frame{}
}

// DrawSprite XORs the sprite onto the framebuffer at x, y. Each byte of the
// sprite is one row, drawn most significant bit first. Returns true if any
// pixel was turned off.
func (fb *Framebuffer) DrawSprite(x, y int, sprite []uint8) bool {
	var collision bool

	for row, b := range sprite {
		py := (y + row) % Height
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>bit) == 0 {
				continue // for loop
			}
			px := (x + bit) % Width
			if fb.frame.pixels[py][px] {
				collision = true
			}
			fb.frame.pixels[py][px] = !fb.frame.pixels[py][px]
		}
	}

	return collision
}

// Frame returns a copy of the current state of the framebuffer.
func (fb *Framebuffer) Frame() Frame {
	return fb.frame
}
